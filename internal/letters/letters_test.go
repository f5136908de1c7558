package letters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/llm"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

// scriptedClient returns a fixed response and records the last prompt.
type scriptedClient struct {
	response string
	err      error
	prompt   string
}

func (c *scriptedClient) Generate(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *scriptedClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *scriptedClient) Close() error { return nil }

func testMaster() *types.MasterResume {
	return &types.MasterResume{
		Name:  "Jordan Rivera",
		Email: "jordan@example.com",
		Summary: []types.SummaryOption{
			{ID: "sum-default", Text: "Backend engineer with a platform focus."},
		},
		Experience: []types.Experience{
			{
				ID: "exp-acme", Company: "Acme", Title: "Senior Engineer",
				StartDate: "2020-01", EndDate: "Present",
				Bullets: []types.Bullet{
					{ID: "b1", Text: "Cut deploy time by 60%", Tags: []string{"ci"}},
				},
			},
		},
		Projects: []types.Project{
			{ID: "proj-cli", Name: "CLI Tool", Technologies: "Go",
				Bullets: []types.Bullet{{ID: "pb1", Text: "Built a release pipeline", Tags: nil}}},
		},
		Skills: []types.SkillCategory{
			{ID: "skills-langs", Category: "Languages", Items: []string{"Go", "TypeScript"}},
		},
	}
}

func testAnalysis() *types.JobAnalysis {
	return &types.JobAnalysis{
		Title:                 "Staff Engineer",
		Company:               "Initech",
		Seniority:             "staff",
		Domain:                "backend",
		DomainFit:             types.FitStrong,
		EmphasisAreas:         []string{"reliability"},
		KeyTerminology:        []string{"SLOs"},
		SummaryRecommendation: "lead with platform work",
	}
}

func TestCoverLetter_ParsesPayload(t *testing.T) {
	client := &scriptedClient{response: `{"coverLetter": "Dear team, I build platforms."}`}
	w := NewWriter(client)

	letter, err := w.CoverLetter(context.Background(), "posting text", testAnalysis(), testMaster(), store.DefaultVoice(), "")
	require.NoError(t, err)
	assert.Equal(t, "Dear team, I build platforms.", letter)

	assert.Contains(t, client.prompt, "Staff Engineer at Initech")
	assert.Contains(t, client.prompt, "posting text")
	assert.Contains(t, client.prompt, "Jordan Rivera")
	assert.Contains(t, client.prompt, "Writing voice:")
	assert.NotContains(t, client.prompt, "Specific points the sender wants to address")
}

func TestCoverLetter_TalkingPointsIncluded(t *testing.T) {
	client := &scriptedClient{response: `{"coverLetter": "letter"}`}
	w := NewWriter(client)

	_, err := w.CoverLetter(context.Background(), "jd", testAnalysis(), testMaster(), store.DefaultVoice(), "mention the migration project")
	require.NoError(t, err)
	assert.Contains(t, client.prompt, "Specific points the sender wants to address")
	assert.Contains(t, client.prompt, "mention the migration project")
}

func TestCoverLetter_FencedPayload(t *testing.T) {
	client := &scriptedClient{response: "```json\n{\"coverLetter\": \"fenced letter\"}\n```"}
	w := NewWriter(client)

	letter, err := w.CoverLetter(context.Background(), "jd", testAnalysis(), testMaster(), store.DefaultVoice(), "")
	require.NoError(t, err)
	assert.Equal(t, "fenced letter", letter)
}

func TestCoverLetter_MalformedPayload(t *testing.T) {
	client := &scriptedClient{response: `{"letter": "wrong key"}`}
	w := NewWriter(client)

	_, err := w.CoverLetter(context.Background(), "jd", testAnalysis(), testMaster(), store.DefaultVoice(), "")
	require.Error(t, err)

	genErr, ok := err.(*GenerationError)
	require.True(t, ok, "error should be GenerationError type")
	assert.Contains(t, genErr.Message, "schema")
}

func TestReachout_ParsesPayload(t *testing.T) {
	client := &scriptedClient{response: `{"connectionNote": "Saw your talk on SLOs.", "followUpMessage": "Thanks for connecting."}`}
	w := NewWriter(client)

	result, err := w.Reachout(context.Background(), "profile text here", testMaster(), store.DefaultVoice(), "")
	require.NoError(t, err)
	assert.Equal(t, "Saw your talk on SLOs.", result.ConnectionNote)
	assert.Equal(t, "Thanks for connecting.", result.FollowUpMessage)

	assert.Contains(t, client.prompt, "profile text here")
	assert.NotContains(t, client.prompt, "Target Role JD")
}

func TestReachout_JDContextIncluded(t *testing.T) {
	client := &scriptedClient{response: `{"connectionNote": "note", "followUpMessage": "dm"}`}
	w := NewWriter(client)

	_, err := w.Reachout(context.Background(), "profile", testMaster(), store.DefaultVoice(), "staff engineer posting")
	require.NoError(t, err)
	assert.Contains(t, client.prompt, "Target Role JD")
	assert.Contains(t, client.prompt, "staff engineer posting")
}

func TestReachout_MissingField(t *testing.T) {
	client := &scriptedClient{response: `{"connectionNote": "only half"}`}
	w := NewWriter(client)

	_, err := w.Reachout(context.Background(), "profile", testMaster(), store.DefaultVoice(), "")
	require.Error(t, err)
	_, ok := err.(*GenerationError)
	assert.True(t, ok)
}

func TestResumeContext(t *testing.T) {
	text := ResumeContext(testMaster())

	assert.Contains(t, text, "Name: Jordan Rivera")
	assert.Contains(t, text, "Senior Engineer at Acme (2020-01 to Present)")
	assert.Contains(t, text, "Cut deploy time by 60%")
	assert.Contains(t, text, "CLI Tool [Go]")
	assert.Contains(t, text, "Languages: Go, TypeScript")
}

func TestVoiceBlock(t *testing.T) {
	voice := &types.VoiceProfile{
		Style:        "Direct",
		Tone:         "Warm",
		Description:  "Engineer to engineer.",
		Signatures:   []string{"Opens with a specific observation"},
		AntiPatterns: []string{"Buzzword strings"},
	}

	block := VoiceBlock(voice)
	assert.Contains(t, block, "Style: Direct")
	assert.Contains(t, block, "Tone: Warm")
	assert.Contains(t, block, "Opens with a specific observation")
	assert.Contains(t, block, "Buzzword strings")
}
