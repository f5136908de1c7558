// Package rendering produces LaTeX source from an assembled document.
package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in user-authored text and
// normalizes typographic dashes and quotes to their LaTeX equivalents.
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '—': // em dash
			result.WriteString(`---`)
		case '–': // en dash
			result.WriteString(`--`)
		case '‘': // left single quote
			result.WriteString("`")
		case '’': // right single quote
			result.WriteString(`'`)
		case '“': // left double quote
			result.WriteString("``")
		case '”': // right double quote
			result.WriteString(`''`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL escapes a hyperlink target. URLs inside \href need a narrower
// escape set than free text: only % and # are structurally significant.
func EscapeURL(url string) string {
	url = strings.ReplaceAll(url, "%", `\%`)
	return strings.ReplaceAll(url, "#", `\#`)
}
