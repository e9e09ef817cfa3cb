package checks

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
)

// Structure reports the cell composition of a loaded notebook.
// A notebook without code cells is a warning.
func Structure(stats models.CellStats) models.CheckResult {
	res := models.CheckResult{
		ID:       IDStructure,
		Name:     "Notebook structure",
		Status:   models.StatusPass,
		Blocking: true,
		Summary:  fmt.Sprintf("valid notebook with %d cells", stats.Total),
		Details: []string{
			fmt.Sprintf("file size: %s", humanize.Bytes(uint64(stats.SizeBytes))),
			fmt.Sprintf("code cells: %d", stats.Code),
			fmt.Sprintf("markdown cells: %d", stats.Markdown),
		},
	}
	if stats.Other > 0 {
		res.Details = append(res.Details, fmt.Sprintf("other cells: %d", stats.Other))
	}
	if stats.Code == 0 {
		res.Status = models.StatusWarn
		res.Summary = "notebook has no code cells"
	}
	return res
}
