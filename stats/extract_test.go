package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractMetrics_ThreeRowFile_RankTwoIsBestDataRow pins the rank-2 rule:
// sorted descending the header sits at rank 1, so rank 2 is the best data row.
func TestExtractMetrics_ThreeRowFile_RankTwoIsBestDataRow(t *testing.T) {
	for _, order := range []SortOrder{SortNumeric, SortLexical} {
		t.Run(order.String(), func(t *testing.T) {
			// GIVEN header + two data rows, best row last in file order
			rows := toRows(
				samplerHeader,
				sampleRow("3.1", "98.0"),
				sampleRow("7.2", "120.5"),
			)

			// WHEN metrics are extracted
			m, err := ExtractMetrics(rows, order)

			// THEN rank 2 is the 7.2 row
			require.NoError(t, err)
			assert.Equal(t, 7.2, m.BestFitnessImprovement)
			assert.Equal(t, 120.5, m.SecondRankedMemoryUsage)
		})
	}
}

func TestExtractMetrics_BestFitnessImprovement_IsMaximum(t *testing.T) {
	rows := toRows(
		samplerHeader,
		sampleRow("3.1", "10"),
		sampleRow("7.2", "20"),
		sampleRow("1.0", "30"),
	)

	m, err := ExtractMetrics(rows, SortNumeric)
	require.NoError(t, err)
	assert.Equal(t, 7.2, m.BestFitnessImprovement)
	assert.Equal(t, 20.0, m.SecondRankedMemoryUsage)
}

func TestExtractMetrics_DifferentDigitCounts_LexicalAndNumericDiverge(t *testing.T) {
	// GIVEN values whose string order differs from numeric order
	rows := toRows(
		samplerHeader,
		sampleRow("10.2", "200"),
		sampleRow("9.5", "100"),
	)

	numeric, err := ExtractMetrics(rows, SortNumeric)
	require.NoError(t, err)
	lexical, err := ExtractMetrics(rows, SortLexical)
	require.NoError(t, err)

	// THEN the maximum is numeric in both modes
	assert.Equal(t, 10.2, numeric.BestFitnessImprovement)
	assert.Equal(t, 10.2, lexical.BestFitnessImprovement)
	// AND the rank-2 row follows the chosen ordering ("9.5" > "10.2" as text)
	assert.Equal(t, 200.0, numeric.SecondRankedMemoryUsage)
	assert.Equal(t, 100.0, lexical.SecondRankedMemoryUsage)
}

func TestExtractMetrics_NegativeValues_NumericOrder(t *testing.T) {
	rows := toRows(
		samplerHeader,
		sampleRow("-5.0", "50"),
		sampleRow("-0.5", "40"),
		sampleRow("-12.0", "60"),
	)

	m, err := ExtractMetrics(rows, SortNumeric)
	require.NoError(t, err)
	assert.Equal(t, -0.5, m.BestFitnessImprovement)
	assert.Equal(t, 40.0, m.SecondRankedMemoryUsage)
}

func TestExtractMetrics_Ties_KeepFileOrder(t *testing.T) {
	rows := toRows(
		samplerHeader,
		sampleRow("4.0", "11"),
		sampleRow("4.0", "22"),
	)

	for _, order := range []SortOrder{SortNumeric, SortLexical} {
		m, err := ExtractMetrics(rows, order)
		require.NoError(t, err)
		assert.Equal(t, 11.0, m.SecondRankedMemoryUsage, "order=%v", order)
	}
}

func TestExtractMetrics_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rows []ResultRow
	}{
		{"empty file", nil},
		{"header only", toRows(samplerHeader)},
		{"no header label", toRows(sampleRow("1.0", "2"), sampleRow("2.0", "3"))},
		{"fitness not numeric", toRows(samplerHeader, sampleRow("abc", "3"))},
		{"memory not numeric", toRows(samplerHeader, sampleRow("1.0", "lots"))},
		{"fitness NaN", toRows(samplerHeader, sampleRow("NaN", "3"))},
		{"fitness Inf", toRows(samplerHeader, sampleRow("Inf", "3"))},
		{"fitness -Inf", toRows(samplerHeader, sampleRow("-Inf", "3"))},
		{"fitness overflows", toRows(samplerHeader, sampleRow("1e400", "3"))},
		{"memory +Inf", toRows(samplerHeader, sampleRow("1.0", "+Inf"))},
		{"short row", toRows(samplerHeader, []string{"a", "b", "c"})},
	}
	for _, tc := range tests {
		for _, order := range []SortOrder{SortNumeric, SortLexical} {
			t.Run(tc.name+"/"+order.String(), func(t *testing.T) {
				_, err := ExtractMetrics(tc.rows, order)
				if !errors.Is(err, ErrMalformedInput) {
					t.Errorf("expected ErrMalformedInput, got %v", err)
				}
			})
		}
	}
}

func TestExtractMetrics_DoesNotMutateInput(t *testing.T) {
	rows := toRows(
		samplerHeader,
		sampleRow("1.0", "10"),
		sampleRow("9.0", "90"),
	)

	_, err := ExtractMetrics(rows, SortNumeric)
	require.NoError(t, err)

	fi, _ := rows[1].FitnessImprovement()
	assert.Equal(t, "1.0", fi, "input rows must keep file order")
}

func TestExtractMetrics_RepeatedCalls_Isolated(t *testing.T) {
	// GIVEN a high-scoring file followed by a low-scoring one
	high := toRows(samplerHeader, sampleRow("50.0", "500"))
	low := toRows(samplerHeader, sampleRow("2.0", "20"))

	_, err := ExtractMetrics(high, SortNumeric)
	require.NoError(t, err)
	m, err := ExtractMetrics(low, SortNumeric)

	// THEN the second file's best value does not see the first file's rows
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.BestFitnessImprovement)
	assert.Equal(t, 20.0, m.SecondRankedMemoryUsage)
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("numeric")
	require.NoError(t, err)
	assert.Equal(t, SortNumeric, o)

	o, err = ParseSortOrder("Lexical")
	require.NoError(t, err)
	assert.Equal(t, SortLexical, o)

	_, err = ParseSortOrder("random")
	assert.Error(t, err)
}
