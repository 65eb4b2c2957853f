package commands

import (
	"fmt"

	"csr/internal/config"
	"csr/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config  *config.Config
	history storage.History
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, history storage.History) *HistoryCommand {
	return &HistoryCommand{
		config:  cfg,
		history: history,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	entries, err := hc.history.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	color.Cyan("Recent suite runs:\n")
	for _, e := range entries {
		coverage := "-"
		if e.Coverage.Valid {
			coverage = fmt.Sprintf("%.1f%%", e.Coverage.Float64)
		}
		line := fmt.Sprintf("  #%-5d %-10s passed:%-3d failed:%-3d skipped:%-3d coverage:%-7s %6.2fs  %s",
			e.ID, e.Suite, e.PassedSteps, e.FailedSteps, e.SkippedSteps, coverage,
			e.DurationSeconds, e.CreatedAt.Format("2006-01-02 15:04:05"))
		if e.Passed() {
			color.Green("%s", line)
		} else {
			color.Red("%s", line)
		}
	}
	return nil
}
