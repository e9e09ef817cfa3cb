package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// DefaultMaxFindings is the number of syntax findings shown when not verbose.
const DefaultMaxFindings = 5

// TextOptions configures the text renderer.
type TextOptions struct {
	// Verbose shows every syntax finding and every element.
	Verbose bool
	// NoColor disables styling even on a terminal.
	NoColor bool
}

type palette struct {
	pass, fail, warn, skip, info, bold lipgloss.Style
}

func newPalette(w io.Writer, noColor bool) palette {
	r := lipgloss.NewRenderer(w)
	if noColor {
		// A renderer without a terminal falls back to plain ASCII.
		r = lipgloss.NewRenderer(io.Discard)
	}
	return palette{
		pass: r.NewStyle().Foreground(lipgloss.Color("10")),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
		warn: r.NewStyle().Foreground(lipgloss.Color("11")),
		skip: r.NewStyle().Faint(true),
		info: r.NewStyle().Foreground(lipgloss.Color("12")),
		bold: r.NewStyle().Bold(true),
	}
}

func (p palette) glyph(s models.Status) string {
	switch s {
	case models.StatusPass:
		return p.pass.Render("✓")
	case models.StatusFail:
		return p.fail.Render("✗")
	case models.StatusWarn:
		return p.warn.Render("⚠")
	default:
		return p.skip.Render("-")
	}
}

// WriteText writes a sectioned human-readable report to w.
func WriteText(w io.Writer, report *models.Report, opts TextOptions) error {
	p := newPalette(w, opts.NoColor)
	tw := &textWriter{w: w}
	rule := strings.Repeat("=", 80)

	header := func(title string) {
		tw.printf("\n%s\n%s\n%s\n\n", p.bold.Render(rule), p.bold.Render(title), p.bold.Render(rule))
	}
	info := func(s string) {
		tw.printf("%s %s\n", p.info.Render("ℹ"), s)
	}

	header("NOTEBOOK CHECK: " + report.Notebook)

	for i, res := range report.Results {
		tw.printf("%s\n", p.bold.Render(fmt.Sprintf("%d. %s", i+1, res.Name)))
		tw.printf("%s %s\n", p.glyph(res.Status), res.Summary)

		switch res.ID {
		case checks.IDSyntax:
			for _, d := range res.Details {
				info(d)
			}
			shown := res.Syntax
			if !opts.Verbose && len(shown) > DefaultMaxFindings {
				shown = shown[:DefaultMaxFindings]
			}
			for _, f := range shown {
				tw.printf("  %s %s\n", p.glyph(models.StatusFail), f.String())
			}
			if n := len(res.Syntax) - len(shown); n > 0 {
				info(fmt.Sprintf("%d more not shown (use --mode verbose)", n))
			}
		case checks.IDElements:
			for _, el := range res.Elements {
				if el.Present && !opts.Verbose {
					continue
				}
				st := models.StatusFail
				if el.Present {
					st = models.StatusPass
				}
				tw.printf("  %s %s\n", p.glyph(st), el.Label)
			}
		default:
			for _, d := range res.Details {
				info(d)
			}
		}
		tw.printf("\n")
	}

	header("SUMMARY")
	for _, res := range report.Blocking() {
		tw.printf("%s %s\n", p.glyph(res.Status), res.Name)
	}
	if report.Passed {
		tw.printf("\n%s\n", p.pass.Bold(true).Render("✓ ALL CHECKS PASSED"))
	} else {
		tw.printf("\n%s\n", p.warn.Bold(true).Render("⚠ SOME CHECKS FAILED"))
	}
	return tw.err
}

// textWriter remembers the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
