package commands

import (
	"csr/internal/cli"
	"csr/internal/config"
	"csr/internal/execution"
	"csr/internal/parser"
	"csr/internal/storage"
	"csr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Last     *LastCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	runner := execution.NewRunner(cfg)
	pipeline := execution.NewPipeline(cfg, runner)
	outputParser := parser.NewOutputParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewMySQLHistory(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, runner, pipeline, outputParser, jsonStorage, history, formatter),
		List:     NewListCommand(cfg, formatter),
		Last:     NewLastCommand(cfg, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
		History:  NewHistoryCommand(cfg, history),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
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
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run a verification suite",
		Long:    "Select a suite by --suite or the TEST_SUITE environment variable and run its steps sequentially, fail-fast. Post-success hooks run only when every step passed.",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Suite to run (overrides the TEST_SUITE environment variable)")
	runCmd.Flags().StringVar(&flags.StepFilter, "step", "", "Run only steps matching this name pattern (supports wildcards, e.g. 'lint' or '*style*')")
	runCmd.Flags().StringVarP(&flags.ProjectPath, "project-path", "p", "", "Path to the project the suite runs against")
	runCmd.Flags().StringVar(&flags.SuitesFile, "suites-file", "", "Path to the TOML suite-definition file")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-step timeout (default 30m)")
	runCmd.Flags().BoolVar(&flags.NoUpload, "no-upload", false, "Skip post-success hooks (e.g. the coverage upload)")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Stream tool output instead of showing a progress bar")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List available suites",
		Long:    "Show the built-in suites plus any defined in the suites file, without running them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.ProjectPath, "project-path", "p", "", "Path to the project the suite runs against")
	listCmd.Flags().StringVar(&flags.SuitesFile, "suites-file", "", "Path to the TOML suite-definition file")
	listCmd.Flags().BoolVar(&flags.ShowSteps, "steps", false, "Show each suite's steps and hooks")
	rootCmd.AddCommand(listCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:     "last",
		Short:   "Show the last run",
		Long:    "Display the summary of the most recent saved suite run",
		RunE:    c.Last.Execute,
		PreRunE: applyFlags,
	}
	lastCmd.Flags().StringVarP(&flags.ProjectPath, "project-path", "p", "", "Path to the project the suite runs against")
	rootCmd.AddCommand(lastCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failures interactively",
		Long:    "Display failures from the last suite run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.ProjectPath, "project-path", "p", "", "Path to the project the suite runs against")
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List recent runs",
		Long:    "List recent suite runs from the configured MySQL run history",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().StringVarP(&flags.ProjectPath, "project-path", "p", "", "Path to the project the suite runs against")
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
