package commands

import (
	"fmt"

	"csr/internal/config"
	"csr/internal/storage"
	"csr/internal/ui"

	"github.com/spf13/cobra"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  *ui.FailureViewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer *ui.FailureViewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved run found, run a suite first: %w", err)
	}
	return fc.viewer.View(results)
}
