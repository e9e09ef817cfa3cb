package checks

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/models"
	"golang.org/x/sync/errgroup"
)

// Prober answers whether a Python module can be imported.
type Prober interface {
	Available(ctx context.Context, module string) (bool, error)
}

// ErrInvalidModule is returned for module names that are not dotted identifiers.
var ErrInvalidModule = errors.New("invalid module name")

var moduleName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// PythonProber imports modules in a child Python interpreter.
type PythonProber struct {
	// Python is the interpreter executable (e.g., "python3").
	Python string
}

// Available runs `python -c "import module"`. A non-zero exit means the
// module is not importable; failing to start the interpreter is an error.
func (p PythonProber) Available(ctx context.Context, module string) (bool, error) {
	if !moduleName.MatchString(module) {
		return false, fmt.Errorf("%w: %q", ErrInvalidModule, module)
	}
	cmd := exec.CommandContext(ctx, p.Python, "-c", "import "+module)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// StaticProber answers from a fixed set of installed modules.
type StaticProber map[string]bool

// Available reports whether module is in the set.
func (s StaticProber) Available(_ context.Context, module string) (bool, error) {
	return s[module], nil
}

// ProbeLimit bounds the number of concurrent probes.
const ProbeLimit = 4

type probeResult struct {
	installed bool
	err       error
}

// probeAll probes every library concurrently. Results keep the order of libs.
func probeAll(ctx context.Context, prober Prober, libs []Library, timeout time.Duration) []probeResult {
	out := make([]probeResult, len(libs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ProbeLimit)
	for i, lib := range libs {
		i, lib := i, lib
		g.Go(func() error {
			pctx := gctx
			if timeout > 0 {
				var cancel context.CancelFunc
				pctx, cancel = context.WithTimeout(gctx, timeout)
				defer cancel()
			}
			ok, err := prober.Available(pctx, lib.Module)
			out[i] = probeResult{installed: ok, err: err}
			// Probe failures are reported per library, never abort the group.
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// LibraryInstall asks prober whether each configured library is importable.
// It is advisory: missing required libraries and probe failures are
// warnings, missing optional libraries are only listed.
func LibraryInstall(ctx context.Context, prober Prober, libs []Library, timeout time.Duration) models.CheckResult {
	res := models.CheckResult{
		ID:     IDLibraryStatus,
		Name:   "Installed libraries",
		Status: models.StatusPass,
	}
	if prober == nil {
		res.Status = models.StatusSkip
		res.Summary = "import probing disabled"
		return res
	}

	results := probeAll(ctx, prober, libs, timeout)

	missing := 0
	for i, lib := range libs {
		pr := results[i]
		installed := pr.installed
		st := models.LibraryStatus{
			Module:   lib.Module,
			Pip:      lib.Pip,
			Required: lib.Required,
		}
		switch {
		case pr.err != nil:
			st.ProbeError = pr.err.Error()
			res.Status = models.StatusWarn
			res.Details = append(res.Details, fmt.Sprintf("%s (%s) - probe failed: %v", lib.Module, lib.Pip, pr.err))
		case installed:
			st.Installed = &installed
			res.Details = append(res.Details, fmt.Sprintf("%s (%s) - installed", lib.Module, lib.Pip))
		case lib.Required:
			st.Installed = &installed
			missing++
			res.Status = models.StatusWarn
			res.Details = append(res.Details,
				fmt.Sprintf("%s (%s) - NOT installed", lib.Module, lib.Pip),
				fmt.Sprintf("  install: pip install %s", lib.Pip))
		default:
			st.Installed = &installed
			res.Details = append(res.Details,
				fmt.Sprintf("%s (%s) - not installed (optional)", lib.Module, lib.Pip),
				fmt.Sprintf("  install: pip install %s", lib.Pip))
		}
		res.Libraries = append(res.Libraries, st)
	}

	if missing > 0 {
		res.Summary = fmt.Sprintf("required libraries missing: %d", missing)
	} else if res.Status == models.StatusWarn {
		res.Summary = "some libraries could not be probed"
	} else {
		res.Summary = "required libraries are installed"
	}
	return res
}
