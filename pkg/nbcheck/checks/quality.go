package checks

import (
	"fmt"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// CommentRatio returns the share of non-blank lines that are comments.
func CommentRatio(code string) (ratio float64, lines, comments int) {
	for _, line := range strings.Split(code, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		lines++
		if strings.HasPrefix(t, "#") {
			comments++
		}
	}
	if lines == 0 {
		return 0, 0, 0
	}
	return float64(comments) / float64(lines), lines, comments
}

// Comments is an advisory check that passes when the comment ratio is
// strictly above minRatio.
func Comments(nb *models.Notebook, minRatio float64) models.CheckResult {
	ratio, lines, comments := CommentRatio(nb.CodeText())
	res := models.CheckResult{
		ID:      IDCommentRatio,
		Name:    "Comments",
		Status:  models.StatusPass,
		Summary: "enough comments in code",
		Details: []string{
			fmt.Sprintf("code lines: %d", lines),
			fmt.Sprintf("comment lines: %d", comments),
			fmt.Sprintf("comment ratio: %.1f%%", ratio*100),
		},
		Ratio: &ratio,
	}
	if ratio <= minRatio {
		res.Status = models.StatusWarn
		res.Summary = "few comments in code"
	}
	return res
}

// PrintUsage is an advisory check for explicit print output.
func PrintUsage(nb *models.Notebook) models.CheckResult {
	res := models.CheckResult{
		ID:      IDPrintUsage,
		Name:    "Result output",
		Status:  models.StatusPass,
		Summary: "print is used to output results",
	}
	if !strings.Contains(nb.CodeText(), "print(") {
		res.Status = models.StatusWarn
		res.Summary = "no print statements to output results"
	}
	return res
}

// ErrorHandling is an advisory check for try/except blocks.
func ErrorHandling(nb *models.Notebook) models.CheckResult {
	res := models.CheckResult{
		ID:      IDErrorHandling,
		Name:    "Error handling",
		Status:  models.StatusPass,
		Summary: "error handling (try/except) is used",
	}
	if !Contains("try:", "except")(nb.CodeText()) {
		res.Status = models.StatusWarn
		res.Summary = "no error handling"
	}
	return res
}
