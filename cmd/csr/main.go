package main

import (
	"fmt"
	"os"

	"csr/internal/cli"
	"csr/internal/cli/commands"
	"csr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:          "csr",
		Short:        "CI suite runner",
		Long:         `A CI suite runner. Select a verification suite with the TEST_SUITE environment variable or the --suite flag, run its external tools sequentially and fail-fast, and upload coverage only after the unit suite succeeds.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
