package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"csr/internal/config"
	"csr/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats reads and displays the saved run from the JSON results file
func (f *Formatter) PrintRunStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read results file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse results: %w", err)
	}

	f.PrintRun(&output)
	return nil
}

// PrintRun displays a run summary: header, stats table, per-step lines and failures
func (f *Formatter) PrintRun(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Suite Run Statistics                      ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Suite")
	color.White("%-27s │\n", meta.Suite)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Steps")
	color.White("%-27d │\n", meta.TotalSteps)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Steps")
	color.Green("%-27d │\n", meta.PassedSteps)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Steps")
	color.Red("%-27d │\n", meta.FailedSteps)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped Steps")
	color.Yellow("%-27d │\n", meta.SkippedSteps)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Hooks Run")
	color.White("%-27d │\n", meta.HooksRun)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	if meta.HasCoverage {
		fmt.Printf("│ %-31s │ ", "Coverage")
		coverageStr := fmt.Sprintf("%.1f%%", meta.Coverage)
		color.White("%-27s │\n", coverageStr)
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	}

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	f.printSteps(output.Steps)

	fmt.Println()
	if output.Success() {
		color.Green("✓ Suite %s passed!", meta.Suite)
	} else {
		color.Red("✗ Suite %s failed: %d step(s) failed, %d skipped", meta.Suite, meta.FailedSteps, meta.SkippedSteps)
		fmt.Println()
		f.printFailureTree(output.Failures)
	}
}

// printSteps prints one line per step with its status and duration
func (f *Formatter) printSteps(steps []domain.StepOutcome) {
	for _, step := range steps {
		label := step.Name
		if step.Hook {
			label = step.Name + " (hook)"
		}
		switch domain.StepStatus(step.Status) {
		case domain.StepPassed:
			color.Green("  ✓ %-24s %s  (%.2fs)", label, step.Command, step.DurationSeconds)
		case domain.StepFailed:
			color.Red("  ✗ %-24s %s  (exit %d, %.2fs)", label, step.Command, step.ExitCode, step.DurationSeconds)
		case domain.StepSkipped:
			color.Yellow("  - %-24s %s  (skipped)", label, step.Command)
		}
	}
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.StepFailure
	IsFile   bool
}

// printFailureTree prints extracted failures grouped as a file tree.
// Failures without a file path (e.g. a crashed tool) are listed flat first.
func (f *Formatter) printFailureTree(failures []domain.StepFailure) {
	if len(failures) == 0 {
		return
	}

	fileMap := make(map[string][]domain.StepFailure)
	for _, failure := range failures {
		if failure.FilePath == "" {
			color.Red("  [%s] %s", failure.StepName, firstLine(failure.Message))
			continue
		}
		fileMap[failure.FilePath] = append(fileMap[failure.FilePath], failure)
	}
	if len(fileMap) == 0 {
		return
	}

	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for filePath, fileFailures := range fileMap {
		parts := strings.Split(strings.TrimPrefix(filePath, "./"), "/")
		current := root

		for i, part := range parts {
			if part == "" {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
			if i == len(parts)-1 {
				current.Failures = fileFailures
			}
		}
	}

	f.printTreeNode(root, "")
}

// printTreeNode recursively prints a tree node and its children
func (f *Formatter) printTreeNode(node *TreeNode, indent string) {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := node.Children[name]
		if child.IsFile {
			color.White("%s%s", indent, name)
			for _, failure := range child.Failures {
				loc := ""
				if failure.Line > 0 {
					loc = fmt.Sprintf(":%d", failure.Line)
				}
				code := ""
				if failure.Code != "" {
					code = failure.Code + " "
				}
				color.Red("%s  ✗ %s%s %s%s", indent, failure.StepName, loc, code, firstLine(failure.Message))
			}
		} else {
			color.Cyan("%s%s/", indent, name)
			f.printTreeNode(child, indent+"  ")
		}
	}
}

// PrintSuites lists the available suites, optionally with their steps
func (f *Formatter) PrintSuites(suites []domain.Suite, showSteps bool) {
	color.Cyan("Available suites:\n")
	for _, s := range suites {
		color.White("  %-12s %s", s.Name, s.Description)
		if !showSteps {
			continue
		}
		for _, step := range s.Steps {
			fmt.Printf("    %-14s %s %s\n", step.Name, step.Command, strings.Join(step.Args, " "))
		}
		for _, hook := range s.Hooks {
			fmt.Printf("    %-14s %s %s (post-success hook)\n", hook.Name, hook.Command, strings.Join(hook.Args, " "))
		}
	}
}

// firstLine returns the first non-empty line of s, trimmed
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return s
}
