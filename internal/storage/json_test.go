package storage

import (
	"testing"
	"time"

	"csr/internal/config"
	"csr/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	results := []domain.StepResult{
		{Step: domain.Step{Name: "lint", Command: "flake8"}, Status: domain.StepPassed, Duration: 2 * time.Second},
		{Step: domain.Step{Name: "docstyle", Command: "pydocstyle"}, Status: domain.StepFailed, ExitCode: 1, Duration: time.Second},
	}
	failures := []domain.StepFailure{
		{StepName: "docstyle", FilePath: "myia/front.py", Line: 33, Code: "D103", Message: "Missing docstring"},
	}
	output := domain.NewRunOutput("static", results, failures, 3*time.Second)

	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Meta.Suite != "static" {
		t.Errorf("expected suite static, got %s", loaded.Meta.Suite)
	}
	if loaded.Meta.TotalSteps != 2 || loaded.Meta.PassedSteps != 1 || loaded.Meta.FailedSteps != 1 {
		t.Errorf("unexpected meta counts: %+v", loaded.Meta)
	}
	if len(loaded.Steps) != 2 {
		t.Fatalf("expected 2 step outcomes, got %d", len(loaded.Steps))
	}
	if loaded.Steps[1].ExitCode != 1 || loaded.Steps[1].Status != "failed" {
		t.Errorf("unexpected step outcome: %+v", loaded.Steps[1])
	}
	if len(loaded.Failures) != 1 || loaded.Failures[0].Code != "D103" {
		t.Errorf("unexpected failures: %+v", loaded.Failures)
	}
	if loaded.Success() {
		t.Error("run with a failed step should not be a success")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := NewJSONStorage(testConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected error for missing results file")
	}
}

func TestJSONStorage_ResolvedRoundTrip(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	output := domain.NewRunOutput("static", []domain.StepResult{
		{Step: domain.Step{Name: "lint", Command: "flake8"}, Status: domain.StepFailed, ExitCode: 1},
	}, []domain.StepFailure{
		{StepName: "lint", FilePath: "a.py", Line: 1, Code: "E501", Message: "line too long"},
	}, time.Second)

	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mark resolved and save again, as the failures viewer does
	output.Failures[0].Resolved = true
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("resave: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Failures[0].Resolved {
		t.Error("resolved status was not persisted")
	}
}

func TestNewRunOutput_CountsAndHooks(t *testing.T) {
	results := []domain.StepResult{
		{Step: domain.Step{Name: "tests", Command: "pytest"}, Status: domain.StepPassed},
		{Step: domain.Step{Name: "coverage-upload", Command: "codecov"}, Status: domain.StepPassed, Hook: true},
	}
	output := domain.NewRunOutput("unit", results, nil, time.Second)

	if output.Meta.HooksRun != 1 {
		t.Errorf("expected 1 hook run, got %d", output.Meta.HooksRun)
	}
	if !output.Success() {
		t.Error("all-passed run should be a success")
	}
	if output.Failures == nil {
		t.Error("failures should marshal as an empty array, not null")
	}

	output.SetCoverage(94.2)
	if !output.Meta.HasCoverage || output.Meta.Coverage != 94.2 {
		t.Errorf("unexpected coverage meta: %+v", output.Meta)
	}
}
