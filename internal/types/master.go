// Package types provides type definitions for structured data used throughout the resumint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MasterResume is the candidate's complete fact base. Profiles reference its
// entries by id; ids are the only stable cross-reference key, text content may
// change without changing identity.
type MasterResume struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	LinkedIn   string          `json:"linkedin,omitempty"`
	GitHub     string          `json:"github,omitempty"`
	Website    string          `json:"website,omitempty"`
	Summary    []SummaryOption `json:"summary"`
	Experience []Experience    `json:"experience"`
	Projects   []Project       `json:"projects"`
	Education  []Education     `json:"education"`
	Skills     []SkillCategory `json:"skills"`
}

// SummaryOption is one interchangeable summary variant.
type SummaryOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Bullet is a single tagged accomplishment statement. Tags are lowercase and
// drive relevance matching against job analyses.
type Bullet struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

// Experience is one role at one organization with its bullets in
// chronological/priority order.
type Experience struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []Bullet `json:"bullets"`
}

// Project is a personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Technologies string   `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Bullets      []Bullet `json:"bullets"`
}

// Education is one degree or program entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// SkillCategory groups skill strings under a labeled category.
type SkillCategory struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// FindExperience returns the experience entry with the given id, or nil.
func (m *MasterResume) FindExperience(id string) *Experience {
	for i := range m.Experience {
		if m.Experience[i].ID == id {
			return &m.Experience[i]
		}
	}
	return nil
}

// FindProject returns the project entry with the given id, or nil.
func (m *MasterResume) FindProject(id string) *Project {
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			return &m.Projects[i]
		}
	}
	return nil
}

// FindSummary returns the summary variant with the given id, or nil.
func (m *MasterResume) FindSummary(id string) *SummaryOption {
	for i := range m.Summary {
		if m.Summary[i].ID == id {
			return &m.Summary[i]
		}
	}
	return nil
}

// AllSkillItems returns every distinct skill string and bullet tag in the
// master record, in first-seen order. Used to give the analysis prompt the
// candidate's full skill inventory.
func (m *MasterResume) AllSkillItems() []string {
	seen := make(map[string]bool)
	items := make([]string, 0)

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		items = append(items, s)
	}

	for _, cat := range m.Skills {
		for _, item := range cat.Items {
			add(item)
		}
	}
	for _, exp := range m.Experience {
		for _, bullet := range exp.Bullets {
			for _, tag := range bullet.Tags {
				add(tag)
			}
		}
	}

	return items
}
