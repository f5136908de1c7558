package types

// Document is the fully-resolved, render-ready resume: identity fields, a
// resolved summary, ordered sections, and the filtered/overridden entry
// lists. It is produced by the assembler and consumed by the renderer; it is
// never persisted.
type Document struct {
	Name       string
	Email      string
	Phone      string
	LinkedIn   string
	GitHub     string
	Website    string
	Summary    string
	Sections   []string
	Experience []Experience
	Projects   []Project
	Education  []Education
	Skills     []SkillCategory
}

// Section names a document may render.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)
