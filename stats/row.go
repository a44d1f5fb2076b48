package stats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Column layout of a sampler results file. Only these two columns are read.
const (
	FitnessImprovementColumn = 6
	MemoryUsedColumn         = 7

	// FitnessImprovementLabel is the header text of column 6.
	FitnessImprovementLabel = "FitnessImprovement"
)

// ResultRow is one row of a sampler results file, header included.
type ResultRow struct {
	Fields []string
}

// FitnessImprovement returns the raw column 6 value.
func (r ResultRow) FitnessImprovement() (string, error) {
	return r.field(FitnessImprovementColumn)
}

// MemoryUsed returns the raw column 7 value (megabytes).
func (r ResultRow) MemoryUsed() (string, error) {
	return r.field(MemoryUsedColumn)
}

func (r ResultRow) field(col int) (string, error) {
	if col >= len(r.Fields) {
		return "", fmt.Errorf("%w: row has %d columns, need column %d", ErrMalformedInput, len(r.Fields), col)
	}
	return r.Fields[col], nil
}

// ReadResultFile reads every row of a sampler results CSV.
func ReadResultFile(path string) ([]ResultRow, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening result file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return readRows(file)
}

// lineCounter counts the lines of everything read through it.
type lineCounter struct {
	r        io.Reader
	newlines int
	last     byte
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.newlines += bytes.Count(p[:n], []byte{'\n'})
		c.last = p[n-1]
	}
	return n, err
}

func (c *lineCounter) lines() int {
	if c.last != 0 && c.last != '\n' {
		return c.newlines + 1
	}
	return c.newlines
}

// readRows parses CSV rows. encoding/csv skips empty lines; here an empty line
// is a row without columns, so it is reported as malformed.
func readRows(r io.Reader) ([]ResultRow, error) {
	counter := &lineCounter{r: r}
	reader := csv.NewReader(counter)
	reader.FieldsPerRecord = -1

	var rows []ResultRow
	nextLine := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV row %d: %v", ErrMalformedInput, len(rows)+1, err)
		}
		if line, _ := reader.FieldPos(0); line != nextLine {
			return nil, fmt.Errorf("%w: blank line %d", ErrMalformedInput, nextLine)
		}
		// A quoted last field may span several lines.
		last := len(record) - 1
		lastLine, _ := reader.FieldPos(last)
		nextLine = lastLine + strings.Count(record[last], "\n") + 1

		rows = append(rows, ResultRow{Fields: record})
	}
	if counter.lines() >= nextLine {
		return nil, fmt.Errorf("%w: blank line %d", ErrMalformedInput, nextLine)
	}
	return rows, nil
}
