// Package installer installs the Python packages a notebook needs.
//
// Packages are installed one at a time and a failure never stops the run.
// Required failures are collected for the caller to surface; optional
// failures are reported as skipped.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"go.uber.org/zap"
)

// ErrRequiredFailed is returned when at least one required package failed.
var ErrRequiredFailed = errors.New("required packages not installed")

// Runner installs a single package.
type Runner interface {
	Install(ctx context.Context, pkg string) error
}

// PipRunner installs packages with `python -m pip install`.
type PipRunner struct {
	// Python is the interpreter executable.
	Python string
	// Stdout and Stderr receive pip output (nil discards it).
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs pip for one package.
func (r PipRunner) Install(ctx context.Context, pkg string) error {
	cmd := exec.CommandContext(ctx, r.Python, "-m", "pip", "install", pkg)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pip install %s: %w", pkg, err)
	}
	return nil
}

// Outcome is the result for one package.
type Outcome struct {
	Library checks.Library
	Err     error
}

// OK reports whether the package installed.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Result summarises an installer run.
type Result struct {
	Outcomes []Outcome
}

// Failed returns the required packages that did not install.
func (r Result) Failed() []checks.Library {
	var out []checks.Library
	for _, o := range r.Outcomes {
		if !o.OK() && o.Library.Required {
			out = append(out, o.Library)
		}
	}
	return out
}

// Skipped returns the optional packages that did not install.
func (r Result) Skipped() []checks.Library {
	var out []checks.Library
	for _, o := range r.Outcomes {
		if !o.OK() && !o.Library.Required {
			out = append(out, o.Library)
		}
	}
	return out
}

// Err returns ErrRequiredFailed naming the failed required packages, or nil.
func (r Result) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, lib := range failed {
		names[i] = lib.Module
	}
	return fmt.Errorf("%w: %s", ErrRequiredFailed, strings.Join(names, ", "))
}

// Installer installs packages through a Runner.
type Installer struct {
	Runner Runner
	// Logger receives per-package log lines. If nil, logging is disabled.
	Logger *zap.Logger
	// OnDone, if set, is called after each package attempt.
	OnDone func(Outcome)
}

// Run installs required packages first, then optional ones. It stops early
// only if ctx is cancelled.
func (in *Installer) Run(ctx context.Context, libs []checks.Library) (Result, error) {
	logger := in.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	for _, required := range []bool{true, false} {
		for _, lib := range libs {
			if lib.Required != required {
				continue
			}
			if err := ctx.Err(); err != nil {
				return res, err
			}
			pkg := lib.Pip
			if pkg == "" {
				pkg = lib.Module
			}
			err := in.Runner.Install(ctx, pkg)
			if err != nil {
				logger.Warn("package install failed",
					zap.String("package", pkg),
					zap.Bool("required", lib.Required),
					zap.Error(err))
			} else {
				logger.Debug("package installed", zap.String("package", pkg))
			}
			out := Outcome{Library: lib, Err: err}
			res.Outcomes = append(res.Outcomes, out)
			if in.OnDone != nil {
				in.OnDone(out)
			}
		}
	}
	return res, nil
}
