package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/config"
	"github.com/jonathan/resumint/internal/observability"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

func testApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = dir
	s := store.New(dir)
	require.NoError(t, s.Init())
	return &app{
		cfg:     cfg,
		store:   s,
		printer: observability.NewPrinter(os.Stderr),
	}
}

func TestTexPathLayout(t *testing.T) {
	a := testApp(t)

	path := a.texPath("acme-corp", "Jordan Smith")
	assert.Equal(t, filepath.Join(a.store.OutputDir(), "acme-corp", "Jordan_Smith_Resume.tex"), path)

	path = a.texPath("acme-corp", "")
	assert.Equal(t, filepath.Join(a.store.OutputDir(), "acme-corp", "Resume.tex"), path)
}

func TestWriteTex(t *testing.T) {
	a := testApp(t)

	path, err := a.writeTex("acme", "Jordan Smith", "\\documentclass{article}")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\\documentclass{article}", string(content))
}

func TestFindProfile(t *testing.T) {
	profiles := []*types.Profile{{Name: "backend"}, {Name: "frontend"}}

	assert.Equal(t, profiles[1], findProfile(profiles, "frontend"))
	assert.Nil(t, findProfile(profiles, "missing"))
}

func TestEqualStrings(t *testing.T) {
	assert.True(t, equalStrings([]string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, equalStrings([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, equalStrings([]string{"a"}, []string{"a", "b"}))
	assert.True(t, equalStrings(nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-te", truncate("exactly-te", 10))
	assert.Equal(t, "this is a …", truncate("this is a long string", 10))
}

func TestJoinArrow(t *testing.T) {
	assert.Equal(t, "summary → experience", joinArrow([]string{"summary", "experience"}))
	assert.Equal(t, "", joinArrow(nil))
}
