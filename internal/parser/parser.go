package parser

import "csr/internal/domain"

// Parser extracts structure from captured tool output
type Parser interface {
	ParseCoverage(output string) (float64, bool)
	ParseFailures(result domain.StepResult) []domain.StepFailure
}
