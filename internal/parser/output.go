package parser

import (
	"regexp"
	"strconv"
	"strings"

	"csr/internal/domain"
)

// OutputParser parses lint, docstyle and test-runner output
type OutputParser struct{}

// NewOutputParser creates a new OutputParser
func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

var (
	// coverage.py report: "TOTAL    1234    56    95%"
	coverageTotalRe = regexp.MustCompile(`(?m)^TOTAL\s+\d+\s+\d+(?:\s+\d+\s+\d+)?\s+(\d+(?:\.\d+)?)%`)
	// generic: "coverage: 95.4%"
	coverageLineRe = regexp.MustCompile(`coverage:\s*(\d+(?:\.\d+)?)%`)

	// flake8 style: "myia/front.py:12:80: E501 line too long"
	lintLineRe = regexp.MustCompile(`^(\S+?):(\d+):(\d+):\s+([A-Z]+\d+)\s+(.*)$`)
	// pydocstyle location line: "myia/front.py:33 in public function parse:"
	// or "myia/front.py:1 at module level:"
	docstyleLocRe = regexp.MustCompile(`^(\S+?):(\d+)\s+(?:in|at)\s+.+:$`)
	// pydocstyle message line: "        D103: Missing docstring in public function"
	docstyleMsgRe = regexp.MustCompile(`^\s+(D\d+):\s+(.*)$`)
	// pytest summary: "FAILED tests/test_front.py::test_parse - AssertionError: ..."
	pytestFailRe = regexp.MustCompile(`^(?:FAILED|ERROR)\s+(\S+?)(?:::(\S+))?(?:\s+-\s+(.*))?$`)
)

// ParseCoverage extracts a coverage percentage from test-runner output.
// Returns false when the output carries no recognizable coverage figure.
func (p *OutputParser) ParseCoverage(output string) (float64, bool) {
	if m := coverageTotalRe.FindStringSubmatch(output); len(m) >= 2 {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	if m := coverageLineRe.FindStringSubmatch(output); len(m) >= 2 {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// ParseFailures extracts per-diagnostic failures from a failed step's output.
// Recognizes flake8-style "file:line:col: CODE message" lines, pydocstyle's
// two-line location/code format and pytest's FAILED/ERROR summary lines.
// Falls back to a single failure carrying the output tail when nothing matches.
func (p *OutputParser) ParseFailures(result domain.StepResult) []domain.StepFailure {
	if !result.Failed() {
		return nil
	}

	var failures []domain.StepFailure
	lines := strings.Split(result.Output, "\n")

	var pendingFile string
	var pendingLine int

	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r")

		if m := lintLineRe.FindStringSubmatch(trimmed); m != nil {
			lineNo, _ := strconv.Atoi(m[2])
			col, _ := strconv.Atoi(m[3])
			failures = append(failures, domain.StepFailure{
				StepName: result.Step.Name,
				FilePath: m[1],
				Line:     lineNo,
				Column:   col,
				Code:     m[4],
				Message:  m[5],
			})
			pendingFile = ""
			continue
		}

		if m := docstyleLocRe.FindStringSubmatch(trimmed); m != nil {
			pendingFile = m[1]
			pendingLine, _ = strconv.Atoi(m[2])
			continue
		}

		if m := docstyleMsgRe.FindStringSubmatch(trimmed); m != nil && pendingFile != "" {
			failures = append(failures, domain.StepFailure{
				StepName: result.Step.Name,
				FilePath: pendingFile,
				Line:     pendingLine,
				Code:     m[1],
				Message:  m[2],
			})
			pendingFile = ""
			continue
		}

		if m := pytestFailRe.FindStringSubmatch(trimmed); m != nil {
			message := m[3]
			if message == "" {
				message = "test failed"
			}
			failure := domain.StepFailure{
				StepName: result.Step.Name,
				FilePath: m[1],
				Message:  message,
			}
			if m[2] != "" {
				failure.Message = m[2] + ": " + message
			}
			failures = append(failures, failure)
			continue
		}
	}

	if len(failures) == 0 {
		failures = append(failures, domain.StepFailure{
			StepName: result.Step.Name,
			Message:  outputTail(result.Output, 20),
		})
	}

	return failures
}

// outputTail returns the last n non-empty lines of output
func outputTail(output string, n int) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
