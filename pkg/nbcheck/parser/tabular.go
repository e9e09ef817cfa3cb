package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyTable indicates the file has no header row.
	ErrEmptyTable = errors.New("no header row")
	// ErrTooManyFields indicates a data row wider than the header.
	ErrTooManyFields = errors.New("too many fields")
)

// Value kinds reported per column.
const (
	KindEmpty   = "empty"
	KindInteger = "integer"
	KindFloat   = "float"
	KindText    = "text"
)

// SampleTable reads the header and up to n data rows of a tabular file.
// Files ending in .xlsx or .xlsm are read as workbooks, anything else as CSV.
func SampleTable(path string, n int) (*models.TableSample, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return sampleWorkbook(path, n)
	default:
		return sampleCSV(path, n)
	}
}

func sampleCSV(path string, n int) (*models.TableSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	// Short rows are padded like missing values; only long rows are rejected.
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for len(rows) < n {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d",
				ErrTooManyFields, line, len(header), len(rec))
		}
		rows = append(rows, rec)
	}

	return &models.TableSample{
		Format: "csv",
		Header: header,
		Rows:   len(rows),
		Kinds:  columnKinds(len(header), rows),
	}, nil
}

func sampleWorkbook(path string, n int) (*models.TableSample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheetName := sheets[0]

	it, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	// Collect the header plus n data rows, skipping blank rows.
	var raw [][]string
	for len(raw) < n+1 && it.Next() {
		cols, err := it.Columns()
		if err != nil {
			return nil, err
		}
		if isBlankRow(cols) {
			continue
		}
		raw = append(raw, cols)
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyTable
	}

	minCol, maxCol := findColumnBounds(raw)
	table := make([][]string, len(raw))
	for i, row := range raw {
		table[i] = sliceColumns(row, minCol, maxCol)
	}

	return &models.TableSample{
		Format: "xlsx",
		Sheet:  sheetName,
		Header: table[0],
		Rows:   len(table) - 1,
		Kinds:  columnKinds(len(table[0]), table[1:]),
	}, nil
}

func isBlankRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// findColumnBounds finds the leftmost and rightmost non-empty columns.
func findColumnBounds(rows [][]string) (minCol, maxCol int) {
	minCol, maxCol = -1, -1
	for _, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

// sliceColumns returns row[minCol:maxCol+1], padding short rows.
func sliceColumns(row []string, minCol, maxCol int) []string {
	out := make([]string, maxCol-minCol+1)
	for i := range out {
		if c := minCol + i; c < len(row) {
			out[i] = row[c]
		}
	}
	return out
}

// columnKinds infers one value kind per column from the sampled rows.
func columnKinds(width int, rows [][]string) []string {
	kinds := make([]string, width)
	for col := range kinds {
		kind := KindEmpty
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			kind = mergeKind(kind, valueKind(row[col]))
		}
		kinds[col] = kind
	}
	return kinds
}

// valueKind classifies a single cell value.
func valueKind(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindEmpty
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return KindInteger
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return KindFloat
	}
	return KindText
}

func mergeKind(a, b string) string {
	switch {
	case a == KindEmpty:
		return b
	case b == KindEmpty || a == b:
		return a
	case a == KindText || b == KindText:
		return KindText
	default:
		// integer mixed with float
		return KindFloat
	}
}
