package commands

import (
	"csr/internal/config"
	"csr/internal/suite"
	"csr/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	registry := suite.NewRegistry()
	if err := registry.LoadFile(lc.config.GetSuitesPath()); err != nil {
		return err
	}

	lc.formatter.PrintSuites(registry.All(), lc.config.Flags.ShowSteps)
	return nil
}
