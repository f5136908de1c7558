package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_BareJSON(t *testing.T) {
	input := `{"title": "Engineer"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"title\": \"Engineer\"}\n```"
	assert.Equal(t, `{"title": "Engineer"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"title\": \"Engineer\"}\n```"
	assert.Equal(t, `{"title": "Engineer"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n```json\n{\"a\": 1}\n```\n  "
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestConfig_ModelFallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierFast: "gemini-2.5-flash"},
	}
	assert.Equal(t, "gemini-2.5-flash", config.Model(TierDeep))
}
