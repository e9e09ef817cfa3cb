package nbcheck

import (
	"context"
	"fmt"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"go.uber.org/zap"
)

// Validate loads a notebook and runs every check.
// Load failures are returned as *LoadError; after a successful load every
// check runs to completion and its outcome is recorded in the report.
func Validate(ctx context.Context, path string, opts Options) (*models.Report, error) {
	nb, size, err := LoadNotebook(path)
	if err != nil {
		return nil, err
	}
	return Check(ctx, path, nb, size, opts)
}

// Check runs every check against an already loaded notebook.
// The notebook is not modified.
func Check(ctx context.Context, name string, nb *models.Notebook, size int64, opts Options) (*models.Report, error) {
	log := opts.logger().With(zap.String("notebook", name), zap.String("mode", string(opts.Mode)))
	stats := models.ComputeStats(nb, size)
	log.Debug("notebook loaded",
		zap.Int("cells", stats.Total),
		zap.Int("code_cells", stats.Code),
		zap.Int("markdown_cells", stats.Markdown))

	libs := opts.libraries()
	results := make([]models.CheckResult, 0, len(checks.Order))
	record := func(res models.CheckResult) {
		log.Debug("check finished",
			zap.String("check", res.ID),
			zap.String("status", string(res.Status)),
			zap.String("summary", res.Summary))
		results = append(results, res)
	}

	record(checks.Structure(stats))

	syn, err := checks.Syntax(ctx, nb, opts.ShouldAllowMagics())
	if err != nil {
		return nil, fmt.Errorf("syntax check: %w", err)
	}
	record(syn)

	record(checks.Elements(nb, opts.elementTable()))
	record(checks.LibraryReferences(nb, libs))

	var prober checks.Prober
	if opts.ShouldProbe() {
		prober = opts.Prober
	}
	record(checks.LibraryInstall(ctx, prober, libs, opts.ProbeTimeout))

	sampleRows := 0
	if opts.ShouldSample() {
		sampleRows = opts.SampleRows
	}
	record(checks.Dataset(opts.DatasetPath, sampleRows))

	if opts.Mode == ModeLight {
		for _, id := range []string{checks.IDCommentRatio, checks.IDPrintUsage, checks.IDErrorHandling} {
			record(skipped(id))
		}
	} else {
		record(checks.Comments(nb, opts.MinCommentRatio))
		record(checks.PrintUsage(nb))
		record(checks.ErrorHandling(nb))
	}

	report := models.NewReport(name, stats, results)
	log.Debug("validation finished", zap.Bool("passed", report.Passed))
	return report, nil
}

func skipped(id string) models.CheckResult {
	names := map[string]string{
		checks.IDCommentRatio:  "Comments",
		checks.IDPrintUsage:    "Result output",
		checks.IDErrorHandling: "Error handling",
	}
	return models.CheckResult{
		ID:      id,
		Name:    names[id],
		Status:  models.StatusSkip,
		Summary: "skipped in light mode",
	}
}
