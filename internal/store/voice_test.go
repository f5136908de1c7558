package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/types"
)

func TestLoadVoiceDefaultsWhenMissing(t *testing.T) {
	s := testStore(t)

	voice, err := s.LoadVoice()
	require.NoError(t, err)
	assert.Equal(t, DefaultVoice(), voice)
	assert.False(t, s.HasVoice())
}

func TestVoiceRoundTrip(t *testing.T) {
	s := testStore(t)

	voice := &types.VoiceProfile{
		Style:        "Terse",
		Tone:         "Dry",
		Description:  "Says less.",
		Signatures:   []string{"One-line openers"},
		AntiPatterns: []string{"Exclamation marks"},
	}
	require.NoError(t, s.SaveVoice(voice))
	assert.True(t, s.HasVoice())

	loaded, err := s.LoadVoice()
	require.NoError(t, err)
	assert.Equal(t, voice, loaded)
}

func TestSaveVoiceNormalizesNilSlices(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.SaveVoice(&types.VoiceProfile{Style: "Terse", Tone: "Dry"}))

	loaded, err := s.LoadVoice()
	require.NoError(t, err)
	assert.NotNil(t, loaded.Signatures)
	assert.NotNil(t, loaded.AntiPatterns)
}

func TestLoadVoiceRejectsInvalidRecord(t *testing.T) {
	s := testStore(t)

	path := filepath.Join(s.Root(), "voice.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style": ""}`), 0644))

	_, err := s.LoadVoice()
	require.Error(t, err)
}
