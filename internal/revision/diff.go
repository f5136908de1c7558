// Package revision implements the interactive revise/compile/rollback loop
// and the text rewriting it drives.
package revision

import (
	"regexp"
	"strings"
)

// minTextResidue is the minimum number of characters that must survive
// markup stripping for a line to count as carrying human-readable content.
const minTextResidue = 6

// Change is one content-bearing line difference between two document
// versions.
type Change struct {
	Old string
	New string
}

var (
	commandPattern  = regexp.MustCompile(`\\[a-zA-Z]+(\{[^}]*\})?`)
	reservedPattern = regexp.MustCompile(`[{}\\%&$#_^~]`)
)

// DiffLines compares two document versions line by line and returns the
// content changes. Lines that differ only in markup commands with no
// human-readable text are suppressed so the reviewer sees content changes,
// not formatting noise.
func DiffLines(oldText, newText string) []Change {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	maxLen := len(oldLines)
	if len(newLines) > maxLen {
		maxLen = len(newLines)
	}

	var changes []Change
	for i := 0; i < maxLen; i++ {
		oldLine := lineAt(oldLines, i)
		newLine := lineAt(newLines, i)

		if oldLine == newLine {
			continue
		}
		if oldLine == "" && newLine == "" {
			continue
		}
		if markupOnly(oldLine) && markupOnly(newLine) &&
			strings.HasPrefix(oldLine, `\`) && strings.HasPrefix(newLine, `\`) {
			continue
		}

		changes = append(changes, Change{Old: oldLine, New: newLine})
	}

	return changes
}

func lineAt(lines []string, i int) string {
	if i >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[i])
}

// markupOnly reports whether stripping markup commands and reserved
// punctuation from the line leaves fewer than minTextResidue characters.
func markupOnly(line string) bool {
	stripped := commandPattern.ReplaceAllString(line, "")
	stripped = reservedPattern.ReplaceAllString(stripped, "")
	return len(strings.TrimSpace(stripped)) < minTextResidue
}
