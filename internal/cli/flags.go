package cli

import (
	"time"

	"csr/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Suite:       f.Suite,
		StepFilter:  f.StepFilter,
		ProjectPath: f.ProjectPath,
		SuitesFile:  f.SuitesFile,
		Timeout:     f.Timeout,
		NoUpload:    f.NoUpload,
		Verbose:     f.Verbose,
		ShowSteps:   f.ShowSteps,
		Limit:       f.Limit,
	}
}
