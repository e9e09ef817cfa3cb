package models

import "strings"

// CellStats summarises the cell composition of a notebook.
type CellStats struct {
	// Total is the number of cells.
	Total int `json:"total"`
	// Code is the number of code cells.
	Code int `json:"code"`
	// Markdown is the number of markdown cells.
	Markdown int `json:"markdown"`
	// Other is the number of cells of any other type.
	Other int `json:"other"`
	// CodeLines is the number of lines across non-empty code cells.
	CodeLines int `json:"code_lines"`
	// SizeBytes is the notebook file size.
	SizeBytes int64 `json:"size_bytes"`
}

// ComputeStats counts cells by kind and code lines.
func ComputeStats(nb *Notebook, size int64) CellStats {
	st := CellStats{Total: len(nb.Cells), SizeBytes: size}
	for _, c := range nb.Cells {
		switch c.Kind() {
		case CellCode:
			st.Code++
			if src := c.Text(); strings.TrimSpace(src) != "" {
				st.CodeLines += strings.Count(src, "\n") + 1
			}
		case CellMarkdown:
			st.Markdown++
		default:
			st.Other++
		}
	}
	return st
}
