package storage

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"csr/internal/config"
	"csr/internal/domain"
)

// HistoryEntry is one recorded suite run
type HistoryEntry struct {
	ID              int64
	Suite           string
	PassedSteps     int
	FailedSteps     int
	SkippedSteps    int
	Coverage        sql.NullFloat64
	DurationSeconds float64
	CreatedAt       time.Time
}

// Passed reports whether the recorded run succeeded
func (e HistoryEntry) Passed() bool {
	return e.FailedSteps == 0 && e.SkippedSteps == 0
}

// History records suite runs across invocations
type History interface {
	Record(output *domain.RunOutput) error
	Recent(limit int) ([]HistoryEntry, error)
}

// MySQLHistory keeps run history in a MySQL table
type MySQLHistory struct {
	config *config.Config
}

// NewMySQLHistory creates a new MySQLHistory
func NewMySQLHistory(cfg *config.Config) *MySQLHistory {
	return &MySQLHistory{config: cfg}
}

// Configured reports whether a history DSN can be resolved from the environment
func (h *MySQLHistory) Configured() bool {
	return h.dsn() != ""
}

// dsn resolves the history DSN: the dedicated variable wins, otherwise the
// DB_* variables the project .env commonly carries.
func (h *MySQLHistory) dsn() string {
	if dsn := os.Getenv(h.config.HistoryDSNVar); dsn != "" {
		return dsn
	}

	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		return ""
	}
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
}

// open connects to the history database and ensures the table exists
func (h *MySQLHistory) open() (*sql.DB, error) {
	dsn := h.dsn()
	if dsn == "" {
		return nil, fmt.Errorf("run history is not configured: set %s or the DB_* variables", h.config.HistoryDSNVar)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		suite VARCHAR(64) NOT NULL,
		passed_steps INT NOT NULL,
		failed_steps INT NOT NULL,
		skipped_steps INT NOT NULL,
		coverage DOUBLE NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`, h.config.HistoryTable)
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return db, nil
}

// Record inserts one row for the run
func (h *MySQLHistory) Record(output *domain.RunOutput) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	var coverage sql.NullFloat64
	if output.Meta.HasCoverage {
		coverage = sql.NullFloat64{Float64: output.Meta.Coverage, Valid: true}
	}

	query := fmt.Sprintf(`INSERT INTO %s
		(suite, passed_steps, failed_steps, skipped_steps, coverage, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`, h.config.HistoryTable)
	_, err = db.Exec(query,
		output.Meta.Suite,
		output.Meta.PassedSteps,
		output.Meta.FailedSteps,
		output.Meta.SkippedSteps,
		coverage,
		output.Meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first
func (h *MySQLHistory) Recent(limit int) ([]HistoryEntry, error) {
	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`SELECT id, suite, passed_steps, failed_steps, skipped_steps,
		coverage, duration_seconds, created_at
		FROM %s ORDER BY id DESC LIMIT ?`, h.config.HistoryTable)
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Suite, &e.PassedSteps, &e.FailedSteps, &e.SkippedSteps,
			&e.Coverage, &e.DurationSeconds, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
