// Package main provides the CLI entry point for nbcheck.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/nbcheck-go/internal/config"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errChecksFailed is returned when the report does not pass. The report
// itself explains why, so cobra does not print it again.
var errChecksFailed = errors.New("some checks failed")

var (
	configPath  string
	datasetPath string
	mode        string
	format      string
	outputPath  string
	xlsxPath    string
	pretty      bool
	pythonExe   string
	noProbe     bool
	sampleRows  int
	verbose     bool
	noColor     bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nbcheck [notebook.ipynb]",
		Short: "Validate a Jupyter notebook for ML coursework",
		Long: `nbcheck validates a Jupyter notebook: JSON structure, Python syntax,
expected ML pipeline elements, library imports and installation, the
dataset file, and basic code quality.

Exit code is 0 when every blocking check passes and 1 otherwise.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE:          run,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: "+config.LocalPath+" if present)")
	pf.StringVar(&pythonExe, "python", "", "Python interpreter (default: "+config.DefaultPython+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&datasetPath, "dataset", "", "Dataset file path (default: "+nbcheck.DefaultDataset+")")
	f.StringVar(&mode, "mode", "standard", "Validation mode: light, standard, verbose")
	f.StringVar(&format, "format", "text", "Report format: text, json")
	f.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	f.StringVar(&xlsxPath, "xlsx", "", "Also write the report as an .xlsx workbook")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.BoolVar(&noProbe, "no-probe", false, "Skip checking whether libraries are installed")
	f.IntVar(&sampleRows, "sample-rows", 0, "Dataset rows to trial-parse (0 disables; default from config)")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newInstallCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	notebookPath := cfg.NotebookPath()
	if len(args) == 1 {
		notebookPath = args[0]
	}

	opts := cfg.Options()
	opts.Logger = logger

	// Parse mode
	switch mode {
	case "light":
		opts.Mode = nbcheck.ModeLight
	case "standard":
		opts.Mode = nbcheck.ModeStandard
	case "verbose":
		opts.Mode = nbcheck.ModeVerbose
	default:
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	if cmd.Flags().Changed("dataset") {
		opts.DatasetPath = datasetPath
	}
	if cmd.Flags().Changed("sample-rows") {
		opts.SampleRows = sampleRows
	}
	if !noProbe {
		opts.Prober = checks.PythonProber{Python: interpreter(cfg)}
	}

	report, err := nbcheck.Validate(cmd.Context(), notebookPath, opts)
	if err != nil {
		return validateError(err)
	}

	// Write output
	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "json":
		jsonData, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		textOpts := output.TextOptions{
			Verbose: opts.Mode == nbcheck.ModeVerbose,
			NoColor: noColor || outputPath != "",
		}
		if err := output.WriteText(w, report, textOpts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if xlsxPath != "" {
		if err := output.WriteXLSX(report, xlsxPath); err != nil {
			return fmt.Errorf("failed to write xlsx report: %w", err)
		}
	}

	if !report.Passed {
		cmd.SilenceErrors = true
		return errChecksFailed
	}
	return nil
}

// validateError wraps an error from nbcheck.Validate. Only load failures
// are reported as such; anything later happened while checking.
func validateError(err error) error {
	var loadErr *nbcheck.LoadError
	if errors.As(err, &loadErr) {
		return fmt.Errorf("failed to load notebook: %w", err)
	}
	return fmt.Errorf("validation failed: %w", err)
}

func interpreter(cfg *config.Config) string {
	if pythonExe != "" {
		return pythonExe
	}
	return cfg.PythonExecutable()
}
