package commands

import (
	"csr/internal/config"
	"csr/internal/ui"

	"github.com/spf13/cobra"
)

// LastCommand handles the last command
type LastCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, formatter *ui.Formatter) *LastCommand {
	return &LastCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	return lc.formatter.PrintRunStats()
}
