package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SortOrder selects how rows are ranked by FitnessImprovement.
type SortOrder int

const (
	// SortNumeric ranks data rows by parsed value, descending. The header row
	// is kept at rank 1, where the lexical order also places it.
	SortNumeric SortOrder = iota
	// SortLexical ranks every row by the raw column text, descending. This
	// misorders values with different digit counts or signs ("9.5" > "10.2").
	SortLexical
)

var sortOrderNames = map[SortOrder]string{
	SortNumeric: "numeric",
	SortLexical: "lexical",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder maps "numeric" or "lexical" to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	for order, name := range sortOrderNames {
		if strings.EqualFold(s, name) {
			return order, nil
		}
	}
	return 0, fmt.Errorf("unknown sort order %q (want numeric or lexical)", s)
}

// PerFileMetrics holds the two values derived from one results file.
type PerFileMetrics struct {
	BestFitnessImprovement  float64 `json:"best_fitness_improvement"`
	SecondRankedMemoryUsage float64 `json:"second_ranked_memory_used_mb"`
}

type rankedRow struct {
	row    ResultRow
	key    string
	value  float64
	header bool
}

// ExtractMetrics ranks rows (header included) by FitnessImprovement descending,
// then returns the largest FitnessImprovement among the data rows and the
// MemoryUsed of the row at rank 2.
func ExtractMetrics(rows []ResultRow, order SortOrder) (PerFileMetrics, error) {
	if len(rows) < 2 {
		return PerFileMetrics{}, fmt.Errorf("%w: %d rows, need a header and at least one data row", ErrMalformedInput, len(rows))
	}

	ranked, err := rankRows(rows, order)
	if err != nil {
		return PerFileMetrics{}, err
	}

	best, err := bestFitnessImprovement(ranked)
	if err != nil {
		return PerFileMetrics{}, err
	}
	memory, err := rankedMemoryUsage(ranked, 2)
	if err != nil {
		return PerFileMetrics{}, err
	}

	return PerFileMetrics{
		BestFitnessImprovement:  best,
		SecondRankedMemoryUsage: memory,
	}, nil
}

func rankRows(rows []ResultRow, order SortOrder) ([]rankedRow, error) {
	ranked := make([]rankedRow, 0, len(rows))
	for i, row := range rows {
		key, err := row.FitnessImprovement()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		r := rankedRow{row: row, key: key, header: key == FitnessImprovementLabel}
		if order == SortNumeric && !r.header {
			if r.value, err = parseMetric(key, FitnessImprovementLabel); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		ranked = append(ranked, r)
	}

	switch order {
	case SortLexical:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].key > ranked[j].key
		})
	case SortNumeric:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].header != ranked[j].header {
				return ranked[i].header
			}
			return ranked[i].value > ranked[j].value
		})
	default:
		return nil, fmt.Errorf("unsupported sort order %v", order)
	}
	return ranked, nil
}

// bestFitnessImprovement drops exactly one header-labelled row and returns the
// maximum of the remaining FitnessImprovement values.
func bestFitnessImprovement(ranked []rankedRow) (float64, error) {
	values := make([]float64, 0, len(ranked))
	headerDropped := false
	for _, r := range ranked {
		if r.header && !headerDropped {
			headerDropped = true
			continue
		}
		v, err := parseMetric(r.key, FitnessImprovementLabel)
		if err != nil {
			return 0, err
		}
		values = append(values, v)
	}
	if !headerDropped {
		return 0, fmt.Errorf("%w: no %s header label in column %d", ErrMalformedInput, FitnessImprovementLabel, FitnessImprovementColumn)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no data rows", ErrMalformedInput)
	}
	return floats.Max(values), nil
}

// rankedMemoryUsage returns MemoryUsed of the row at the 1-indexed rank.
func rankedMemoryUsage(ranked []rankedRow, rank int) (float64, error) {
	if len(ranked) < rank {
		return 0, fmt.Errorf("%w: %d rows, no row at rank %d", ErrMalformedInput, len(ranked), rank)
	}
	raw, err := ranked[rank-1].row.MemoryUsed()
	if err != nil {
		return 0, fmt.Errorf("rank %d row: %w", rank, err)
	}
	return parseMetric(raw, "MemoryUsed")
}

func parseMetric(raw, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s value %q is not a finite number", ErrMalformedInput, column, raw)
	}
	return v, nil
}
