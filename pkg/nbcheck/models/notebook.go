// Package models defines data structures for notebook validation.
package models

import (
	"encoding/json"
	"strings"
)

// CellType is the notebook cell kind.
type CellType string

const (
	// CellCode is an executable code cell.
	CellCode CellType = "code"
	// CellMarkdown is a documentation cell.
	CellMarkdown CellType = "markdown"
	// CellOther covers raw cells and any type this tool does not know.
	CellOther CellType = "other"
)

// Notebook represents a parsed notebook document.
type Notebook struct {
	// Cells is the ordered list of cells.
	Cells []Cell `json:"cells"`
	// NBFormat is the major notebook format version (0 if absent).
	NBFormat int `json:"nbformat,omitempty"`
	// NBFormatMinor is the minor notebook format version (0 if absent).
	NBFormatMinor int `json:"nbformat_minor,omitempty"`
}

// Cell represents one notebook cell.
type Cell struct {
	// Type is the raw cell_type value from the document.
	Type string `json:"cell_type"`
	// Source holds the source fragments in document order.
	Source Source `json:"source"`
}

// Kind classifies the cell as code, markdown or other.
func (c Cell) Kind() CellType {
	switch CellType(c.Type) {
	case CellCode:
		return CellCode
	case CellMarkdown:
		return CellMarkdown
	default:
		return CellOther
	}
}

// Text returns the concatenated cell source.
func (c Cell) Text() string {
	return strings.Join(c.Source, "")
}

// Source is a list of source fragments. The notebook format allows either a
// JSON array of strings or a single string.
type Source []string

// UnmarshalJSON accepts both the array and the single string form.
func (s *Source) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = Source{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// CodeCells returns the indexes of code cells in document order.
func (nb *Notebook) CodeCells() []int {
	var idx []int
	for i, c := range nb.Cells {
		if c.Kind() == CellCode {
			idx = append(idx, i)
		}
	}
	return idx
}

// CodeText joins the source of all code cells with newlines.
func (nb *Notebook) CodeText() string {
	parts := make([]string, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		if c.Kind() == CellCode {
			parts = append(parts, c.Text())
		}
	}
	return strings.Join(parts, "\n")
}
