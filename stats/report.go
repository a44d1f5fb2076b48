package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

// Format selects a report rendering.
type Format string

const (
	FormatText  Format = "text"  // the two variance lines
	FormatTable Format = "table" // per-run breakdown, then the variance lines
	FormatJSON  Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, table or json)", s)
}

// jsonReport is the FormatJSON document.
type jsonReport struct {
	Files              []FileMetrics `json:"files"`
	FitnessImprovement Summary       `json:"fitness_improvement"`
	MemoryUsedMB       Summary       `json:"memory_used_mb"`
}

// WriteReport renders report to w.
func WriteReport(w io.Writer, report *AggregateReport, format Format) error {
	switch format {
	case FormatText:
		return writeVariances(w, report)
	case FormatTable:
		if err := writeTable(w, report); err != nil {
			return err
		}
		return writeVariances(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeVariances(w io.Writer, report *AggregateReport) error {
	fitnessVar, err := report.FitnessImprovementVariance()
	if err != nil {
		return fmt.Errorf("FitnessImprovement variance: %w", err)
	}
	memoryVar, err := report.MemoryUsageVariance()
	if err != nil {
		return fmt.Errorf("MemoryUsed variance: %w", err)
	}
	_, err = fmt.Fprintf(w, "\nFitnessImprovement Variance %.3f\nMemoryUsed (MB) Variance %.3f MB\n", fitnessVar, memoryVar)
	return err
}

func writeTable(w io.Writer, report *AggregateReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tFILE\tROWS\tBEST FITNESS IMPROVEMENT\tRANK-2 MEMORY (MB)")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, f := range report.Files {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%.3f\n",
			f.Index, filepath.Base(f.Path), f.Rows, f.BestFitnessImprovement, f.SecondRankedMemoryUsage)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, report *AggregateReport) error {
	fitness, err := Summarize(report.FitnessImprovementSamples)
	if err != nil {
		return fmt.Errorf("FitnessImprovement summary: %w", err)
	}
	memory, err := Summarize(report.MemoryUsageSamples)
	if err != nil {
		return fmt.Errorf("MemoryUsed summary: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Files:              report.Files,
		FitnessImprovement: fitness,
		MemoryUsedMB:       memory,
	})
}
