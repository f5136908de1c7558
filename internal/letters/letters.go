// Package letters generates prose artifacts around an application: cover
// letters and LinkedIn outreach. Both run the sender's resume and a writing
// voice through the LLM and return schema-validated payloads.
package letters

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

// GenerationError represents a failure to obtain or validate a generated
// letter payload from the LLM.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("letter generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("letter generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Writer generates cover letters and outreach messages.
type Writer struct {
	client llm.Client
}

// NewWriter creates a letter writer over an LLM client.
func NewWriter(client llm.Client) *Writer {
	return &Writer{client: client}
}

// CoverLetter writes a cover letter for an analyzed posting. talkingPoints
// is optional free text the letter should address.
func (w *Writer) CoverLetter(ctx context.Context, jd string, analysis *types.JobAnalysis, master *types.MasterResume, voice *types.VoiceProfile, talkingPoints string) (string, error) {
	template, err := prompts.Get("letters.json", "cover_letter")
	if err != nil {
		return "", &GenerationError{Message: "failed to load cover letter prompt", Cause: err}
	}

	talkingPointsBlock := ""
	if strings.TrimSpace(talkingPoints) != "" {
		talkingPointsBlock = fmt.Sprintf("\nSpecific points the sender wants to address:\n---\n%s\n---\n", talkingPoints)
	}

	prompt := prompts.Format(template, map[string]string{
		"VoiceBlock":            VoiceBlock(voice),
		"Title":                 analysis.Title,
		"Company":               analysis.Company,
		"Domain":                analysis.Domain,
		"EmphasisAreas":         strings.Join(analysis.EmphasisAreas, ", "),
		"Terminology":           strings.Join(analysis.KeyTerminology, ", "),
		"SummaryRecommendation": analysis.SummaryRecommendation,
		"JD":                    jd,
		"ResumeContext":         ResumeContext(master),
		"TalkingPointsBlock":    talkingPointsBlock,
	})

	raw, err := w.client.GenerateJSON(ctx, prompt, llm.TierDeep)
	if err != nil {
		return "", &GenerationError{Message: "LLM call failed", Cause: err}
	}

	var payload struct {
		CoverLetter string `json:"coverLetter"`
	}
	if err := decodePayload(schemas.CoverLetter, raw, &payload); err != nil {
		return "", err
	}
	return payload.CoverLetter, nil
}

// Reachout writes a connection note and follow-up message targeting one
// LinkedIn profile. jd is optional role context; it steers relevance but the
// note never mentions the job directly.
func (w *Writer) Reachout(ctx context.Context, profileText string, master *types.MasterResume, voice *types.VoiceProfile, jd string) (*types.Reachout, error) {
	template, err := prompts.Get("letters.json", "reachout")
	if err != nil {
		return nil, &GenerationError{Message: "failed to load reachout prompt", Cause: err}
	}

	jdBlock := ""
	if strings.TrimSpace(jd) != "" {
		jdBlock = fmt.Sprintf("\nTarget Role JD (use for relevance, do NOT mention the job directly in the connection note):\n---\n%s\n---\n", jd)
	}

	prompt := prompts.Format(template, map[string]string{
		"VoiceBlock":    VoiceBlock(voice),
		"ResumeContext": ResumeContext(master),
		"ProfileText":   profileText,
		"JDBlock":       jdBlock,
	})

	raw, err := w.client.GenerateJSON(ctx, prompt, llm.TierDeep)
	if err != nil {
		return nil, &GenerationError{Message: "LLM call failed", Cause: err}
	}

	var payload struct {
		ConnectionNote  string `json:"connectionNote"`
		FollowUpMessage string `json:"followUpMessage"`
	}
	if err := decodePayload(schemas.Reachout, raw, &payload); err != nil {
		return nil, err
	}
	return &types.Reachout{
		ConnectionNote:  payload.ConnectionNote,
		FollowUpMessage: payload.FollowUpMessage,
	}, nil
}

// decodePayload fence-strips, schema-validates, and unmarshals one LLM
// response. A malformed payload is fatal for the operation.
func decodePayload(schema, raw string, out any) error {
	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.Validate(schema, []byte(cleaned)); err != nil {
		return &GenerationError{Message: "payload did not match schema", Cause: err}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &GenerationError{Message: "failed to decode payload JSON", Cause: err}
	}
	return nil
}

// ResumeContext renders the master resume as plain text for a prompt.
func ResumeContext(master *types.MasterResume) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Name: %s", master.Name), "")

	if len(master.Summary) > 0 {
		lines = append(lines, "Summary options:")
		for _, s := range master.Summary {
			lines = append(lines, fmt.Sprintf("  - %s", s.Text))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "Experience:")
	for _, exp := range master.Experience {
		lines = append(lines, fmt.Sprintf("  %s at %s (%s to %s)", exp.Title, exp.Company, exp.StartDate, exp.EndDate))
		for _, b := range exp.Bullets {
			lines = append(lines, fmt.Sprintf("    * %s", b.Text))
		}
	}
	lines = append(lines, "")

	if len(master.Projects) > 0 {
		lines = append(lines, "Projects:")
		for _, proj := range master.Projects {
			lines = append(lines, fmt.Sprintf("  %s [%s]", proj.Name, proj.Technologies))
			for _, b := range proj.Bullets {
				lines = append(lines, fmt.Sprintf("    * %s", b.Text))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, "Skills:")
	for _, cat := range master.Skills {
		lines = append(lines, fmt.Sprintf("  %s: %s", cat.Category, strings.Join(cat.Items, ", ")))
	}

	return strings.Join(lines, "\n")
}

// VoiceBlock renders the writing voice as prompt instructions.
func VoiceBlock(voice *types.VoiceProfile) string {
	lines := []string{
		"Writing voice:",
		fmt.Sprintf("Style: %s", voice.Style),
		fmt.Sprintf("Tone: %s", voice.Tone),
		voice.Description,
		"",
		"Structural signatures to use:",
	}
	for _, s := range voice.Signatures {
		lines = append(lines, fmt.Sprintf("  - %s", s))
	}
	lines = append(lines, "", "HARD RULES, never do these:")
	for _, a := range voice.AntiPatterns {
		lines = append(lines, fmt.Sprintf("  - %s", a))
	}
	return strings.Join(lines, "\n")
}
