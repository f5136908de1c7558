package store

import (
	"os"
	"path/filepath"

	"github.com/jonathan/resumint/internal/schemas"
	"github.com/jonathan/resumint/internal/types"
)

func (s *Store) voicePath() string {
	return filepath.Join(s.root, "voice.json")
}

// DefaultVoice returns the built-in writing voice used when no voice.json
// exists in the data directory.
func DefaultVoice() *types.VoiceProfile {
	return &types.VoiceProfile{
		Style:       "Direct and concrete",
		Tone:        "Warm but professional, confident without bragging",
		Description: "Writes like an engineer talking to another engineer: specific systems, specific outcomes, no filler.",
		Signatures: []string{
			"Opens with a specific observation, not a greeting formula",
			"One quantified result per paragraph at most",
			"Short closing sentence with a clear next step",
		},
		AntiPatterns: []string{
			"Buzzword strings (\"passionate\", \"synergy\", \"rockstar\")",
			"Apologetic hedging (\"I know you're busy, but...\")",
			"Restating the whole resume",
		},
	}
}

// LoadVoice reads and validates the voice profile, falling back to the
// built-in default when the file does not exist.
func (s *Store) LoadVoice() (*types.VoiceProfile, error) {
	path := s.voicePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultVoice(), nil
	}
	var voice types.VoiceProfile
	if err := s.loadRecord(path, schemas.Voice, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// SaveVoice validates and writes the voice profile.
func (s *Store) SaveVoice(voice *types.VoiceProfile) error {
	if voice.Signatures == nil {
		voice.Signatures = []string{}
	}
	if voice.AntiPatterns == nil {
		voice.AntiPatterns = []string{}
	}
	return s.saveRecord(s.voicePath(), schemas.Voice, voice)
}

// HasVoice reports whether a voice.json exists in the data directory.
func (s *Store) HasVoice() bool {
	_, err := os.Stat(s.voicePath())
	return err == nil
}
