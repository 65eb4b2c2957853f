package config

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SuitesFile  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	StepTimeout time.Duration
	SelectorVar string

	// History settings
	HistoryDSNVar string
	HistoryTable  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Suite       string
	StepFilter  string
	ProjectPath string
	SuitesFile  string
	Timeout     time.Duration
	NoUpload    bool
	Verbose     bool
	ShowSteps   bool
	Limit       int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		SuitesFile:     DefaultSuitesFile,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		StepTimeout:    DefaultStepTimeout,
		SelectorVar:    DefaultSelectorVar,
		HistoryDSNVar:  DefaultHistoryDSNVar,
		HistoryTable:   DefaultHistoryTable,
	}
}

// Load creates a config, applies flags and loads the project .env file
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	// Apply flag overrides
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}
	if flags.SuitesFile != "" {
		cfg.SuitesFile = flags.SuitesFile
	}
	if flags.Timeout > 0 {
		cfg.StepTimeout = flags.Timeout
	}

	cfg.LoadEnv()
	return cfg
}

// LoadEnv loads the project's .env file into the process environment.
// A missing .env is fine, the plain environment is used as-is.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		_ = err
	}
}

// GetSuitesPath returns the path to the suite-definition file, using flag if provided
func (c *Config) GetSuitesPath() string {
	if filepath.IsAbs(c.SuitesFile) {
		return c.SuitesFile
	}
	return filepath.Join(c.ProjectPath, c.SuitesFile)
}

// GetOutputPath returns the full path to the output JSON file (under project so run, last
// and failures use the same file). Resolves to an absolute path regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
