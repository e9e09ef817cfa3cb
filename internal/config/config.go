// Package config provides reading of nbcheck configuration.
// Values come from a YAML file (--config, else .nbcheck.yaml in the working
// directory), then environment variables (optionally loaded from .env).
// Command-line flags override both and are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck"
	"github.com/ukaji3/nbcheck-go/pkg/nbcheck/checks"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidValue is returned when a config value is out of bounds.
	ErrInvalidValue = errors.New("invalid config value")
)

// Environment variables that override file values.
const (
	EnvDataset = "NBCHECK_DATASET"
	EnvPython  = "NBCHECK_PYTHON"
)

// LocalPath is the config file looked up in the working directory.
const LocalPath = ".nbcheck.yaml"

// DefaultPython is the interpreter used for import probes and pip.
const DefaultPython = "python3"

// Validation bounds for configuration values.
const (
	MaxSampleRows   = 10000
	MaxProbeTimeout = 5 * time.Minute
)

// Dataset holds dataset settings.
type Dataset struct {
	Path       *string `yaml:"path,omitempty"`
	SampleRows *int    `yaml:"sample_rows,omitempty"`
}

// Quality holds code quality thresholds.
type Quality struct {
	MinCommentRatio *float64 `yaml:"min_comment_ratio,omitempty"`
}

// Config contains configuration for nbcheck.
type Config struct {
	Notebook     *string          `yaml:"notebook,omitempty"`
	Dataset      Dataset          `yaml:"dataset,omitempty"`
	Python       *string          `yaml:"python,omitempty"`
	ProbeTimeout *string          `yaml:"probe_timeout,omitempty"`
	Magics       *bool            `yaml:"magics,omitempty"`
	Quality      Quality          `yaml:"quality,omitempty"`
	Libraries    []checks.Library `yaml:"libraries,omitempty"`

	// path is the file this config was loaded from ("" for defaults)
	path string
}

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the config file at path. An empty path looks for LocalPath and
// falls back to defaults when it does not exist. Environment overrides are
// applied and the result is validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = LocalPath
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.path = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no local config; defaults apply
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDataset); ok && v != "" {
		c.Dataset.Path = &v
	}
	if v, ok := os.LookupEnv(EnvPython); ok && v != "" {
		c.Python = &v
	}
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Dataset.SampleRows != nil {
		v := *c.Dataset.SampleRows
		if v < 0 || v > MaxSampleRows {
			return fmt.Errorf("%w: dataset.sample_rows must be between 0 and %d, got %d",
				ErrInvalidValue, MaxSampleRows, v)
		}
	}
	if c.Quality.MinCommentRatio != nil {
		v := *c.Quality.MinCommentRatio
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: quality.min_comment_ratio must be between 0 and 1, got %g",
				ErrInvalidValue, v)
		}
	}
	if c.ProbeTimeout != nil {
		d, err := time.ParseDuration(*c.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("%w: probe_timeout: %w", ErrInvalidValue, err)
		}
		if d <= 0 || d > MaxProbeTimeout {
			return fmt.Errorf("%w: probe_timeout must be positive and at most %s, got %s",
				ErrInvalidValue, MaxProbeTimeout, d)
		}
	}
	for i, lib := range c.Libraries {
		if lib.Module == "" {
			return fmt.Errorf("%w: libraries[%d].module is empty", ErrInvalidValue, i)
		}
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// NotebookPath returns the default notebook path.
func (c *Config) NotebookPath() string {
	if c.Notebook == nil {
		return nbcheck.DefaultNotebook
	}
	return *c.Notebook
}

// DatasetPath returns the dataset path.
func (c *Config) DatasetPath() string {
	if c.Dataset.Path == nil {
		return nbcheck.DefaultDataset
	}
	return *c.Dataset.Path
}

// SampleRows returns the number of dataset rows to trial-parse (defaults to 5).
func (c *Config) SampleRows() int {
	if c.Dataset.SampleRows == nil {
		return nbcheck.DefaultSampleRows
	}
	return *c.Dataset.SampleRows
}

// PythonExecutable returns the interpreter (defaults to python3).
func (c *Config) PythonExecutable() string {
	if c.Python == nil {
		return DefaultPython
	}
	return *c.Python
}

// ProbeTimeoutDuration returns the per-probe timeout (defaults to 10s).
// Validate has already rejected malformed values.
func (c *Config) ProbeTimeoutDuration() time.Duration {
	if c.ProbeTimeout == nil {
		return nbcheck.DefaultProbeTimeout
	}
	d, err := time.ParseDuration(*c.ProbeTimeout)
	if err != nil {
		return nbcheck.DefaultProbeTimeout
	}
	return d
}

// MinCommentRatio returns the comment ratio threshold (defaults to 0.10).
func (c *Config) MinCommentRatio() float64 {
	if c.Quality.MinCommentRatio == nil {
		return nbcheck.DefaultMinCommentRatio
	}
	return *c.Quality.MinCommentRatio
}

// AllowMagics returns whether IPython magic lines are tolerated (defaults to true).
func (c *Config) AllowMagics() bool {
	if c.Magics == nil {
		return true
	}
	return *c.Magics
}

// LibraryList returns the configured libraries, or the defaults.
func (c *Config) LibraryList() []checks.Library {
	if len(c.Libraries) == 0 {
		return checks.DefaultLibraries()
	}
	return c.Libraries
}

// Options builds validation options from the config.
func (c *Config) Options() nbcheck.Options {
	opts := nbcheck.DefaultOptions()
	opts.DatasetPath = c.DatasetPath()
	opts.SampleRows = c.SampleRows()
	opts.MinCommentRatio = c.MinCommentRatio()
	opts.ProbeTimeout = c.ProbeTimeoutDuration()
	opts.Libraries = c.LibraryList()
	magics := c.AllowMagics()
	opts.AllowMagics = &magics
	return opts
}
