// Package parser provides notebook source and dataset parsing utilities.
package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PythonError describes the first syntax error found in a source fragment.
type PythonError struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based byte column.
	Column int
	// Message describes the error.
	Message string
}

// PythonParser checks Python source for syntax errors.
// It is not safe for concurrent use.
type PythonParser struct {
	parser *sitter.Parser
}

// NewPythonParser creates a parser for Python 3 source.
func NewPythonParser() *PythonParser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &PythonParser{parser: p}
}

// Close releases the underlying parser.
func (p *PythonParser) Close() {
	p.parser.Close()
}

// Check parses src as a standalone script and returns the first error
// Python 3 would raise when compiling it, or nil if it compiles.
//
// Grammar errors are reported first. The tree is then checked against the
// rules the grammar accepts but the compiler rejects (Python 2 statements,
// argument order, duplicate parameters, misplaced return, yield, break and
// continue), in that order of precedence.
func (p *PythonParser) Check(ctx context.Context, src []byte) (*PythonError, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		node := firstError(root)
		if node == nil {
			// The root reports an error but no node is marked; point at the start.
			return &PythonError{Line: 1, Column: 1, Message: "invalid syntax"}, nil
		}
		return newPythonError(node, describeError(node, src)), nil
	}

	for _, rules := range compileRules {
		if node, msg := findViolation(root, src, rules); node != nil {
			return newPythonError(node, msg), nil
		}
	}
	return nil, nil
}

func newPythonError(n *sitter.Node, msg string) *PythonError {
	pt := n.StartPoint()
	return &PythonError{
		Line:    int(pt.Row) + 1,
		Column:  int(pt.Column) + 1,
		Message: msg,
	}
}

// firstError walks the tree depth-first and returns the first ERROR or
// MISSING node.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func describeError(n *sitter.Node, src []byte) string {
	if n.IsMissing() {
		return fmt.Sprintf("expected %q", n.Type())
	}
	text := string(src[n.StartByte():n.EndByte()])
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "invalid syntax"
	}
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	return fmt.Sprintf("invalid syntax near %q", text)
}

// BlankMagics replaces IPython magic (%) and shell (!) lines with empty
// lines so line numbers are preserved. A cell whose first non-blank line is
// a cell magic (%%) is not Python at all and is blanked entirely.
func BlankMagics(src string) string {
	lines := strings.Split(src, "\n")
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, "%%") {
			return strings.Repeat("\n", len(lines)-1)
		}
		break
	}
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "%") || strings.HasPrefix(t, "!") {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
