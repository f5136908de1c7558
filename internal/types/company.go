package types

// Company is a saved target company record: the posting text, its analysis
// once computed, and the resume versions generated for it.
type Company struct {
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	JD        string          `json:"jd"`
	Analysis  *JobAnalysis    `json:"analysis,omitempty"`
	Reachout  *Reachout       `json:"reachout,omitempty"`
	Versions  []ResumeVersion `json:"versions"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// Reachout is a generated LinkedIn outreach pair saved on a company record.
type Reachout struct {
	ConnectionNote  string `json:"connection_note"`
	FollowUpMessage string `json:"follow_up_message"`
}

// ResumeVersion records one generated resume for a company.
type ResumeVersion struct {
	ID          string `json:"id"`
	Version     int    `json:"version"`
	CreatedAt   string `json:"created_at"`
	ProfileUsed string `json:"profile_used"`
	OutputFile  string `json:"output_file,omitempty"`
}
