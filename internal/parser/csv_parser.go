package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// LoadTable reads a comma-separated file of numeric rows into a Table.
// The file is closed on every return path.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.New(errs.ErrNotFound, "load", path, "", err)
		}
		return nil, errs.New(errs.ErrIO, "load", path, "failed to open CSV file", err)
	}
	defer file.Close()

	return ReadTable(file, path)
}

// ReadTable parses numeric CSV records from r. name is used in error messages
// and recorded as the table's Path.
//
// Every row must have the field count of the first row; a ragged row is an
// ErrShape, never truncated or padded. Every field must parse as a finite float64.
func ReadTable(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // rectangularity is checked below with a better message
	reader.ReuseRecord = true

	var rows [][]float64
	width := -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, errs.New(errs.ErrParse, "load", name, fmt.Sprintf("line %d", perr.Line), err)
			}
			return nil, errs.New(errs.ErrIO, "load", name, "failed to read CSV data", err)
		}
		line, _ := reader.FieldPos(0)

		if width < 0 {
			width = len(record)
		} else if len(record) != width {
			return nil, errs.New(errs.ErrShape, "load", name,
				fmt.Sprintf("line %d has %d fields, expected %d", line, len(record), width), nil)
		}

		row := make([]float64, len(record))
		for col, field := range record {
			val, err := parseField(field)
			if err != nil {
				return nil, errs.New(errs.ErrParse, "load", name,
					fmt.Sprintf("line %d, column %d: %q", line, col+1, field), err)
			}
			row[col] = val
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errs.New(errs.ErrShape, "load", name, "table has no rows", nil)
	}
	return newTable(name, rows), nil
}

// parseField parses one numeric field. NaN and infinities are rejected:
// a measurement table holds finite values only.
func parseField(field string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("value %v is not finite", val)
	}
	return val, nil
}

// WriteTable writes t in the same format LoadTable reads. Values use the
// shortest representation that parses back to the identical float64.
func WriteTable(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter

	nr, nc := t.Dims()
	record := make([]string, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			record[j] = strconv.FormatFloat(t.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveTable writes t to path, replacing any existing file.
func SaveTable(path string, t *Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errs.IO("save", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errs.IO("save", path, cerr)
		}
	}()
	if err := WriteTable(file, t); err != nil {
		return errs.IO("save", path, err)
	}
	return nil
}
