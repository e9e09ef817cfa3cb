// Package nbcheck provides Jupyter notebook validation for ML coursework.
package nbcheck

import (
	"time"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"go.uber.org/zap"
)

// Mode represents the validation mode.
type Mode string

const (
	// ModeLight runs the quick checklist: structure, syntax, the short element
	// table and dataset presence. Import probing, dataset trial parse and
	// code quality checks are skipped.
	ModeLight Mode = "light"
	// ModeStandard runs every check.
	ModeStandard Mode = "standard"
	// ModeVerbose runs every check; renderers show all findings.
	ModeVerbose Mode = "verbose"
)

// Default option values.
const (
	DefaultNotebook        = "aircraft_incident_ml.ipynb"
	DefaultDataset         = "Aircraft_Incident_Dataset.csv"
	DefaultSampleRows      = 5
	DefaultMinCommentRatio = 0.10
	DefaultProbeTimeout    = 10 * time.Second
)

// Options configures validation behavior.
type Options struct {
	// Mode specifies the validation mode (light, standard, verbose).
	Mode Mode
	// DatasetPath is the dataset file checked for existence.
	DatasetPath string
	// SampleRows is the number of dataset rows to trial-parse (0 disables).
	SampleRows int
	// MinCommentRatio is the comment ratio above which the check passes.
	MinCommentRatio float64
	// Libraries lists the Python libraries to look for.
	// If nil, checks.DefaultLibraries() is used.
	Libraries []checks.Library
	// Prober answers whether a library is importable.
	// If nil, import probing is skipped.
	Prober checks.Prober
	// ProbeTimeout bounds each import probe.
	ProbeTimeout time.Duration
	// AllowMagics blanks IPython magic and shell lines before syntax checks.
	// If nil, defaults to true.
	AllowMagics *bool
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default validation options.
func DefaultOptions() Options {
	return Options{
		Mode:            ModeStandard,
		DatasetPath:     DefaultDataset,
		SampleRows:      DefaultSampleRows,
		MinCommentRatio: DefaultMinCommentRatio,
		ProbeTimeout:    DefaultProbeTimeout,
	}
}

// ShouldAllowMagics returns whether magic lines are tolerated.
func (o Options) ShouldAllowMagics() bool {
	if o.AllowMagics != nil {
		return *o.AllowMagics
	}
	return true
}

// ShouldProbe returns whether import probing runs.
func (o Options) ShouldProbe() bool {
	return o.Prober != nil && o.Mode != ModeLight
}

// ShouldSample returns whether the dataset trial parse runs.
func (o Options) ShouldSample() bool {
	return o.SampleRows > 0 && o.Mode != ModeLight
}

func (o Options) libraries() []checks.Library {
	if o.Libraries != nil {
		return o.Libraries
	}
	return checks.DefaultLibraries()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) elementTable() []checks.Element {
	if o.Mode == ModeLight {
		return checks.QuickElements()
	}
	return checks.StandardElements()
}
