package commands

import (
	"context"
	"fmt"
	"os"

	"csr/internal/config"
	"csr/internal/domain"
	"csr/internal/execution"
	"csr/internal/parser"
	"csr/internal/storage"
	"csr/internal/suite"
	"csr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	runner    *execution.Runner
	pipeline  *execution.Pipeline
	parser    *parser.OutputParser
	storage   storage.Storage
	history   *storage.MySQLHistory
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	runner *execution.Runner,
	pipeline *execution.Pipeline,
	outputParser *parser.OutputParser,
	st storage.Storage,
	history *storage.MySQLHistory,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		runner:    runner,
		pipeline:  pipeline,
		parser:    outputParser,
		storage:   st,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Build the suite registry: built-ins plus the project suites file
	registry := suite.NewRegistry()
	if err := registry.LoadFile(rc.config.GetSuitesPath()); err != nil {
		return err
	}

	// Resolve which suite to run: flag wins over TEST_SUITE
	selected, err := registry.Select(rc.config.Flags.Suite, os.Getenv(rc.config.SelectorVar), rc.config.SelectorVar)
	if err != nil {
		return err
	}

	// Narrow steps by pattern
	selected = suite.FilterSteps(selected, rc.config.Flags.StepFilter)
	if len(selected.Steps) == 0 {
		color.Yellow("No steps to execute")
		return nil
	}

	color.Cyan("Running suite %s (%d step(s))", selected.Name, len(selected.Steps))

	if rc.config.Flags.Verbose {
		rc.runner.SetStream(os.Stdout)
	} else {
		progressBar := ui.NewProgressBar(len(selected.Steps))
		rc.pipeline.SetProgress(progressBar)
	}

	// Execute the suite
	results, duration, err := rc.pipeline.Execute(context.Background(), selected, rc.config.Flags.NoUpload)
	if err != nil {
		return err
	}

	// Parse failures and coverage from the captured output
	var failures []domain.StepFailure
	var coverage float64
	var hasCoverage bool
	for _, result := range results {
		if result.Failed() {
			failures = append(failures, rc.parser.ParseFailures(result)...)
		}
		if !hasCoverage {
			coverage, hasCoverage = rc.parser.ParseCoverage(result.Output)
		}
	}

	output := domain.NewRunOutput(selected.Name, results, failures, duration)
	if hasCoverage {
		output.SetCoverage(coverage)
	}

	// Save results
	if err := rc.storage.SaveOutput(output); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Record history when configured; a broken history DB never fails the run
	if rc.history.Configured() {
		if err := rc.history.Record(output); err != nil {
			color.Yellow("warning: %v", err)
		}
	}

	// Print stats
	rc.formatter.PrintRun(output)

	if !output.Success() {
		return fmt.Errorf("suite %q failed", selected.Name)
	}
	return nil
}
