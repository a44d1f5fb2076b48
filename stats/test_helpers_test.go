package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var samplerHeader = []string{
	"MethodName", "Iteration", "EvaluationNumber", "Patch",
	"Compiled", "AllTestsPassed", "FitnessImprovement", "MemoryUsed",
}

// sampleRow builds a data row with the given FitnessImprovement and MemoryUsed.
func sampleRow(fitness, memory string) []string {
	return []string{"com.example.Foo.bar()", "1", "1", "|", "true", "true", fitness, memory}
}

func toRows(records ...[]string) []ResultRow {
	rows := make([]ResultRow, len(records))
	for i, r := range records {
		rows[i] = ResultRow{Fields: r}
	}
	return rows
}

// writeResultFile writes records as CSV to dir/name and returns the path.
func writeResultFile(t *testing.T, dir, name string, records ...[]string) string {
	t.Helper()
	var b strings.Builder
	for _, r := range records {
		b.WriteString(strings.Join(r, ","))
		b.WriteString("\n")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
