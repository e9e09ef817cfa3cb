package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSampleTableCSV(t *testing.T) {
	path := writeFile(t, "incidents.csv",
		"\ufeffId,Aircraft,Fatalities,Damage\n"+
			"1,B737,0,1.5\n"+
			"2,A320,3,2\n"+
			"3,,12,high\n"+
			"4,E190,0,0.1\n")

	sample, err := SampleTable(path, 3)
	require.NoError(t, err)

	assert.Equal(t, "csv", sample.Format)
	assert.Equal(t, []string{"Id", "Aircraft", "Fatalities", "Damage"}, sample.Header)
	assert.Equal(t, 4, sample.Columns())
	assert.Equal(t, 3, sample.Rows)
	assert.Equal(t, []string{KindInteger, KindText, KindInteger, KindText}, sample.Kinds)
}

func TestSampleTableCSVShort(t *testing.T) {
	path := writeFile(t, "short.csv", "a,b\n1,2.5\n")

	sample, err := SampleTable(path, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, sample.Rows)
	assert.Equal(t, []string{KindInteger, KindFloat}, sample.Kinds)
}

func TestSampleTableCSVShortRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\n1,2\n3,x,4.5\n")

	sample, err := SampleTable(path, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, sample.Rows)
	assert.Equal(t, 3, sample.Columns())
	assert.Equal(t, []string{KindInteger, KindText, KindFloat}, sample.Kinds)
}

func TestSampleTableCSVErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := SampleTable(writeFile(t, "empty.csv", ""), 5)
		assert.True(t, errors.Is(err, ErrEmptyTable))
	})
	t.Run("row wider than header", func(t *testing.T) {
		_, err := SampleTable(writeFile(t, "wide.csv", "a,b\n1,2\n3,4,5\n"), 5)
		require.ErrorIs(t, err, ErrTooManyFields)
		assert.Contains(t, err.Error(), "line 3: expected 2 fields, saw 3")
	})
	t.Run("bad quote", func(t *testing.T) {
		_, err := SampleTable(writeFile(t, "quote.csv", "a,b\n\"1,2\n3,4\n"), 5)
		assert.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := SampleTable(filepath.Join(t.TempDir(), "nope.csv"), 5)
		assert.Error(t, err)
	})
}

func TestSampleTableWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table starts at B2 to exercise bounds trimming.
	f.SetCellValue(sheetName, "B2", "Model")
	f.SetCellValue(sheetName, "C2", "Year")
	f.SetCellValue(sheetName, "D2", "Rate")
	f.SetCellValue(sheetName, "B3", "B737")
	f.SetCellValue(sheetName, "C3", 1998)
	f.SetCellValue(sheetName, "D3", 0.25)
	f.SetCellValue(sheetName, "B4", "A320")
	f.SetCellValue(sheetName, "C4", 2004)
	f.SetCellValue(sheetName, "D4", 3)

	path := filepath.Join(t.TempDir(), "incidents.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	sample, err := SampleTable(path, 5)
	require.NoError(t, err)

	assert.Equal(t, "xlsx", sample.Format)
	assert.Equal(t, sheetName, sample.Sheet)
	assert.Equal(t, []string{"Model", "Year", "Rate"}, sample.Header)
	assert.Equal(t, 2, sample.Rows)
	assert.Equal(t, []string{KindText, KindInteger, KindFloat}, sample.Kinds)
}

func TestSampleTableWorkbookInvalid(t *testing.T) {
	path := writeFile(t, "fake.xlsx", "this is not a zip archive")
	_, err := SampleTable(path, 5)
	assert.Error(t, err)
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", KindInteger},
		{"-100", KindInteger},
		{"123.45", KindFloat},
		{"1e3", KindFloat},
		{"hello", KindText},
		{"", KindEmpty},
		{"   ", KindEmpty},
	}

	for _, tt := range tests {
		result := valueKind(tt.input)
		if result != tt.expected {
			t.Errorf("valueKind(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestMergeKind(t *testing.T) {
	tests := []struct {
		a, b     string
		expected string
	}{
		{KindEmpty, KindInteger, KindInteger},
		{KindInteger, KindEmpty, KindInteger},
		{KindInteger, KindFloat, KindFloat},
		{KindFloat, KindInteger, KindFloat},
		{KindInteger, KindText, KindText},
		{KindText, KindFloat, KindText},
	}

	for _, tt := range tests {
		if got := mergeKind(tt.a, tt.b); got != tt.expected {
			t.Errorf("mergeKind(%q, %q) = %q, expected %q", tt.a, tt.b, got, tt.expected)
		}
	}
}
