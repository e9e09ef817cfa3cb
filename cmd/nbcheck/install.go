package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/nbcheck-go/internal/config"
	"github.com/ukaji3/nbcheck-go/internal/installer"
)

var dryRun bool

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the Python packages the notebook needs",
		Long: `Installs the configured required and optional packages with pip, one at a
time. A failure never stops the run. The command exits 1 if any required
package failed; optional failures are only reported.`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the pip commands without running them")
	return cmd
}

// echoRunner prints pip commands instead of running them.
type echoRunner struct {
	python string
	w      io.Writer
}

func (r echoRunner) Install(_ context.Context, pkg string) error {
	_, err := fmt.Fprintf(r.w, "%s -m pip install %s\n", r.python, pkg)
	return err
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out := cmd.OutOrStdout()
	python := interpreter(cfg)

	var runner installer.Runner = installer.PipRunner{
		Python: python,
		Stdout: cmd.ErrOrStderr(),
		Stderr: cmd.ErrOrStderr(),
	}
	if dryRun {
		runner = echoRunner{python: python, w: out}
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(out, "%s\nINSTALLING REQUIRED PACKAGES\n%s\n", rule, rule)

	in := &installer.Installer{
		Runner: runner,
		Logger: logger,
		OnDone: func(o installer.Outcome) {
			switch {
			case o.OK():
				fmt.Fprintf(out, "%s: ✓ installed\n", o.Library.Module)
			case o.Library.Required:
				fmt.Fprintf(out, "%s: ✗ failed\n", o.Library.Module)
			default:
				fmt.Fprintf(out, "%s: ⚠ skipped (optional)\n", o.Library.Module)
			}
		},
	}
	res, err := in.Run(cmd.Context(), cfg.LibraryList())
	if err != nil {
		return fmt.Errorf("install interrupted: %w", err)
	}

	fmt.Fprintln(out, rule)
	failed := res.Failed()
	if len(failed) == 0 {
		fmt.Fprintln(out, "✓ All required packages are installed")
		return nil
	}
	fmt.Fprintln(out, "⚠ Some required packages were not installed. Try installing them manually:")
	for _, lib := range failed {
		fmt.Fprintf(out, "  pip install %s\n", lib.Pip)
	}
	return res.Err()
}
