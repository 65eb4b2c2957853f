package storage

import (
	"csr/internal/config"
	"csr/internal/domain"
)

// Storage persists and loads suite run results (e.g. for last and the failures viewer).
type Storage interface {
	// SaveOutput writes the full run output (also used after resolved-status updates).
	SaveOutput(output *domain.RunOutput) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
