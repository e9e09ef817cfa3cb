package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/parser"
)

// Syntax parses every non-empty code cell and collects one finding per
// failing cell. It never stops at the first failure.
func Syntax(ctx context.Context, nb *models.Notebook, allowMagics bool) (models.CheckResult, error) {
	p := parser.NewPythonParser()
	defer p.Close()

	var findings []models.SyntaxFinding
	checked, lines := 0, 0
	for _, i := range nb.CodeCells() {
		src := nb.Cells[i].Text()
		if strings.TrimSpace(src) == "" {
			continue
		}
		checked++
		lines += strings.Count(src, "\n") + 1
		if allowMagics {
			src = parser.BlankMagics(src)
		}

		perr, err := p.Check(ctx, []byte(src))
		if err != nil {
			return models.CheckResult{}, fmt.Errorf("parse cell %d: %w", i, err)
		}
		if perr != nil {
			findings = append(findings, models.SyntaxFinding{
				Cell:    i,
				Line:    perr.Line,
				Column:  perr.Column,
				Message: perr.Message,
			})
		}
	}

	res := models.CheckResult{
		ID:       IDSyntax,
		Name:     "Python syntax",
		Status:   models.StatusPass,
		Blocking: true,
		Summary:  "Python syntax is valid",
		Details: []string{
			fmt.Sprintf("code cells checked: %d", checked),
			fmt.Sprintf("lines of code: %d", lines),
		},
		Syntax: findings,
	}
	if len(findings) > 0 {
		res.Status = models.StatusFail
		res.Summary = fmt.Sprintf("syntax errors found: %d", len(findings))
	}
	return res, nil
}
