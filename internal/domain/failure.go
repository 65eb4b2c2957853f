package domain

// StepFailure represents one diagnostic extracted from a failed step's output
type StepFailure struct {
	StepName string `json:"step_name"`
	FilePath string `json:"file_path,omitempty"` // Source file the tool complained about
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Code     string `json:"code,omitempty"` // Tool diagnostic code, e.g. E501 or D103
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
