package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "suite-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".csr"
	// DefaultSuitesFile is the suite-definition file looked up under the project path
	DefaultSuitesFile = "suites.toml"
	// DefaultStepTimeout bounds a single step; CI tools that hang should not hang the build forever
	DefaultStepTimeout = 30 * time.Minute
	// DefaultSelectorVar is the environment variable that selects the suite to run
	DefaultSelectorVar = "TEST_SUITE"
	// DefaultHistoryDSNVar is the environment variable carrying the MySQL history DSN
	DefaultHistoryDSNVar = "CSR_HISTORY_DSN"
	// DefaultHistoryTable is the MySQL table run history is written to
	DefaultHistoryTable = "suite_runs"
)
