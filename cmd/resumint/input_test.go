package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfirm(t *testing.T) {
	assert.True(t, ParseConfirm("y", false))
	assert.True(t, ParseConfirm("YES", false))
	assert.False(t, ParseConfirm("n", true))
	assert.False(t, ParseConfirm("anything", true))
	assert.True(t, ParseConfirm("", true))
	assert.False(t, ParseConfirm("", false))
	assert.True(t, ParseConfirm("  y  ", false))
}

func TestParseSelection(t *testing.T) {
	choices := []string{"backend", "frontend", "fullstack"}

	selected, err := ParseSelection("2", choices, "backend")
	require.NoError(t, err)
	assert.Equal(t, "frontend", selected)

	selected, err = ParseSelection("", choices, "backend")
	require.NoError(t, err)
	assert.Equal(t, "backend", selected)

	_, err = ParseSelection("4", choices, "backend")
	require.Error(t, err)

	_, err = ParseSelection("abc", choices, "backend")
	require.Error(t, err)
}

func TestParseMultiSelection(t *testing.T) {
	choices := []string{"Go", "Kafka", "Terraform"}

	selected, err := ParseMultiSelection("1,3", choices)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Terraform"}, selected)

	selected, err = ParseMultiSelection("", choices)
	require.NoError(t, err)
	assert.Equal(t, choices, selected)

	selected, err = ParseMultiSelection("none", choices)
	require.NoError(t, err)
	assert.Empty(t, selected)

	selected, err = ParseMultiSelection("2, 2", choices)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kafka"}, selected)

	_, err = ParseMultiSelection("0", choices)
	require.Error(t, err)
}

func TestTerminalPrompterInput(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader("hello world\n"), &out)

	line, err := p.Input("Say something:")
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)
	assert.Contains(t, out.String(), "Say something:")
}

func TestTerminalPrompterMultiLine(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader("first line\nsecond line\n.\nignored\n"), &out)

	text, err := p.MultiLine("Paste text:")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
}

func TestTerminalPrompterMultiLineEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader("only line"), &out)

	text, err := p.MultiLine("Paste text:")
	require.NoError(t, err)
	assert.Equal(t, "only line", text)
}

func TestTerminalPrompterConfirm(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader("y\n\nn\n"), &out)

	yes, err := p.Confirm("Continue?", false)
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.True(t, yes, "blank input takes the default")

	yes, err = p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestTerminalPrompterSelect(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminalPrompter(strings.NewReader("2\n"), &out)

	selected, err := p.Select("Pick:", []string{"a", "b"}, "a")
	require.NoError(t, err)
	assert.Equal(t, "b", selected)
	assert.Contains(t, out.String(), "1) a")
	assert.Contains(t, out.String(), "2) b")
}
