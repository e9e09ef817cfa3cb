package models

import "slices"

// DatasetInfo describes the dataset file and its trial parse.
type DatasetInfo struct {
	// Path is the configured dataset path.
	Path string `json:"path"`
	// Exists reports whether a file exists at Path.
	Exists bool `json:"exists"`
	// SizeBytes is the file size.
	SizeBytes int64 `json:"size_bytes,omitempty"`
	// Sample is the trial parse result (nil if not attempted or failed).
	Sample *TableSample `json:"sample,omitempty"`
	// ReadError holds the trial parse failure message.
	ReadError string `json:"read_error,omitempty"`
}

// TableSample is the result of reading the first rows of a tabular file.
type TableSample struct {
	// Format is "csv" or "xlsx".
	Format string `json:"format"`
	// Sheet is the sheet read (xlsx only).
	Sheet string `json:"sheet,omitempty"`
	// Header is the first row.
	Header []string `json:"header"`
	// Rows is the number of data rows read after the header.
	Rows int `json:"rows"`
	// Kinds is the inferred value kind per column: integer, float, text or empty.
	Kinds []string `json:"kinds"`
}

// Columns returns the number of columns in the sample.
func (s *TableSample) Columns() int {
	return len(s.Header)
}

// Clone returns a deep copy of d.
func (d *DatasetInfo) Clone() *DatasetInfo {
	out := *d
	if d.Sample != nil {
		sample := *d.Sample
		sample.Header = slices.Clone(d.Sample.Header)
		sample.Kinds = slices.Clone(d.Sample.Kinds)
		out.Sample = &sample
	}
	return &out
}
