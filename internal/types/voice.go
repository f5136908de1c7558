package types

// VoiceProfile describes how generated prose should sound. It is
// user-editable and shared by the cover-letter and reachout generators.
type VoiceProfile struct {
	Style        string   `json:"style"`
	Tone         string   `json:"tone"`
	Description  string   `json:"description"`
	Signatures   []string `json:"signatures"`
	AntiPatterns []string `json:"anti_patterns"`
}
