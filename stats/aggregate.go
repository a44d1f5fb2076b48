package stats

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// IndexPlaceholder is replaced by the 0-based run index in Config.Template.
const IndexPlaceholder = "{index}"

// Config locates the result files of one experiment.
type Config struct {
	Count    int       // number of runs, at least 2; files 0..Count-1 must all exist
	Dir      string    // directory holding the result files
	Template string    // file name with an {index} placeholder
	Order    SortOrder // ranking used by ExtractMetrics
}

// DefaultConfig matches the layout the GIN sampler scripts write:
// samples/sampler_results0.csv .. samples/sampler_results99.csv.
func DefaultConfig() Config {
	return Config{
		Count:    100,
		Dir:      "samples",
		Template: "sampler_results" + IndexPlaceholder + ".csv",
		Order:    SortNumeric,
	}
}

// Validate rejects configurations that cannot yield a variance: fewer than
// 2 files, or a template that does not vary with the run index.
func (c Config) Validate() error {
	if c.Count < 2 {
		return fmt.Errorf("%w: file count is %d, need at least 2", ErrInsufficientSamples, c.Count)
	}
	if !strings.Contains(c.Template, IndexPlaceholder) {
		return fmt.Errorf("file template %q has no %s placeholder", c.Template, IndexPlaceholder)
	}
	return nil
}

// Path returns the result file path for run i.
func (c Config) Path(i int) string {
	return filepath.Join(c.Dir, strings.ReplaceAll(c.Template, IndexPlaceholder, strconv.Itoa(i)))
}

// FileMetrics is the per-run breakdown entry of an AggregateReport.
type FileMetrics struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	PerFileMetrics
}

// AggregateReport collects one sample per processed file, in index order.
// FitnessImprovementSamples and MemoryUsageSamples always have len(Files) entries.
type AggregateReport struct {
	Files                     []FileMetrics
	FitnessImprovementSamples []float64
	MemoryUsageSamples        []float64
}

func (r *AggregateReport) add(fm FileMetrics) {
	r.Files = append(r.Files, fm)
	r.FitnessImprovementSamples = append(r.FitnessImprovementSamples, fm.BestFitnessImprovement)
	r.MemoryUsageSamples = append(r.MemoryUsageSamples, fm.SecondRankedMemoryUsage)
}

// FitnessImprovementVariance is the sample variance of the best FitnessImprovement per run.
func (r *AggregateReport) FitnessImprovementVariance() (float64, error) {
	return SampleVariance(r.FitnessImprovementSamples)
}

// MemoryUsageVariance is the sample variance of the rank-2 MemoryUsed per run.
func (r *AggregateReport) MemoryUsageVariance() (float64, error) {
	return SampleVariance(r.MemoryUsageSamples)
}

// Aggregate reads result files 0..Count-1 in order and collects their metrics.
// A Count below 2 fails with ErrInsufficientSamples before any file is opened;
// otherwise the first failing file aborts the run with a *FileError.
func Aggregate(cfg Config) (*AggregateReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Infof("Aggregating %d result files from %s (sort=%v)", cfg.Count, cfg.Dir, cfg.Order)

	report := &AggregateReport{
		Files:                     make([]FileMetrics, 0, cfg.Count),
		FitnessImprovementSamples: make([]float64, 0, cfg.Count),
		MemoryUsageSamples:        make([]float64, 0, cfg.Count),
	}
	for i := 0; i < cfg.Count; i++ {
		path := cfg.Path(i)
		rows, err := ReadResultFile(path)
		if err != nil {
			return nil, &FileError{Index: i, Path: path, Err: err}
		}
		metrics, err := ExtractMetrics(rows, cfg.Order)
		if err != nil {
			return nil, &FileError{Index: i, Path: path, Err: err}
		}
		logrus.Debugf("%s: rows=%d best_fitness_improvement=%v rank2_memory_used=%v",
			path, len(rows), metrics.BestFitnessImprovement, metrics.SecondRankedMemoryUsage)
		report.add(FileMetrics{Index: i, Path: path, Rows: len(rows), PerFileMetrics: metrics})
	}

	return report, nil
}
