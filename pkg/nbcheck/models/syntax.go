package models

import "fmt"

// SyntaxFinding describes a syntax error in a single code cell.
type SyntaxFinding struct {
	// Cell is the 0-based cell index within the notebook.
	Cell int `json:"cell"`
	// Line is the 1-based line within the cell source.
	Line int `json:"line"`
	// Column is the 1-based column within the line.
	Column int `json:"column"`
	// Message describes the error.
	Message string `json:"message"`
}

func (f SyntaxFinding) String() string {
	return fmt.Sprintf("cell %d: %s (line %d)", f.Cell, f.Message, f.Line)
}
