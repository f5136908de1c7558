package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resumint/internal/llm"
	"github.com/jonathan/resumint/internal/prompts"
	"github.com/jonathan/resumint/internal/schemas"
	"github.com/jonathan/resumint/internal/types"
)

// ExtractionError represents a failure to obtain or validate a structured
// job analysis from the LLM.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// AnalyzeJD extracts a structured job analysis from raw posting text. The
// response is fence-stripped, schema-validated, then decoded; a malformed
// payload is a fatal error for the operation, never silently defaulted.
func AnalyzeJD(ctx context.Context, client llm.Client, jd string, master *types.MasterResume) (*types.JobAnalysis, error) {
	template, err := prompts.Get("analysis.json", "jd_analysis")
	if err != nil {
		return nil, &ExtractionError{Message: "failed to load analysis prompt", Cause: err}
	}

	prompt := prompts.Format(template, map[string]string{
		"UserSkills": strings.Join(master.AllSkillItems(), ", "),
		"JD":         jd,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierFast)
	if err != nil {
		return nil, &ExtractionError{Message: "LLM call failed", Cause: err}
	}

	return ParseAnalysis(raw)
}

// ParseAnalysis validates and decodes an analysis payload. The payload may
// still carry a markdown code fence; it is stripped before validation.
func ParseAnalysis(raw string) (*types.JobAnalysis, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.JobAnalysis, []byte(cleaned)); err != nil {
		return nil, &ExtractionError{Message: "analysis payload did not match schema", Cause: err}
	}

	var analysis types.JobAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, &ExtractionError{Message: "failed to decode analysis JSON", Cause: err}
	}

	return &analysis, nil
}
