package types

// Profile is a named, curated view over the master resume: which summary
// variant, which sections in which order, which entries, and which of each
// entry's bullets. All references are by id; ids that no longer exist in the
// master record are dropped at assembly time, never treated as errors.
type Profile struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Summary     string     `json:"summary"`
	Sections    []string   `json:"sections"`
	Experience  []EntryRef `json:"experience"`
	Projects    []EntryRef `json:"projects"`
	Education   []string   `json:"education"`
	Skills      []string   `json:"skills"`
}

// EntryRef references an experience or project entry and the subset of its
// bullets the profile includes.
type EntryRef struct {
	ID      string   `json:"id"`
	Bullets []string `json:"bullets"`
}

// BulletIDSet returns the referenced bullet ids as a set.
func (r EntryRef) BulletIDSet() map[string]bool {
	set := make(map[string]bool, len(r.Bullets))
	for _, id := range r.Bullets {
		set[id] = true
	}
	return set
}
