package assembly

import (
	"sort"
	"strings"

	"github.com/jonathan/resumint/internal/types"
)

// sectionWeights maps section name to per-domain base weights. The "default"
// key is used when the analysis domain has no entry. Values are design
// constants carried over from the shipped implementation.
var sectionWeights = map[string]map[string]int{
	types.SectionExperience: {
		"Frontend Web Development": 3,
		"Full-Stack":               3,
		"Backend":                  2,
		"default":                  3,
	},
	types.SectionProjects: {
		"Frontend Web Development": 2,
		"Full-Stack":               2,
		"Backend":                  1,
		"default":                  2,
	},
	types.SectionSkills: {
		"default": 1,
	},
	types.SectionEducation: {
		"default": 0,
	},
}

// sectionKeywords associates each section with the emphasis-area phrases that
// boost it.
var sectionKeywords = map[string][]string{
	types.SectionExperience: {"experience", "track record"},
	types.SectionProjects:   {"project", "portfolio"},
	types.SectionSkills:     {"skill", "technical"},
	types.SectionEducation:  {"degree", "education"},
}

// SuggestOrder reorders sections by descending relevance to the analysis.
// It is a total reordering: no section is dropped or added, and ties keep
// the input's relative order.
func SuggestOrder(sections []string, analysis *types.JobAnalysis) []string {
	ordered := append([]string(nil), sections...)
	scores := make(map[string]int, len(sections))
	for _, section := range sections {
		scores[section] = sectionScore(section, analysis)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})

	return ordered
}

func sectionScore(section string, analysis *types.JobAnalysis) int {
	weights, ok := sectionWeights[section]
	if !ok {
		weights = map[string]int{"default": 0}
	}
	score, ok := weights[analysis.Domain]
	if !ok {
		score = weights["default"]
	}

	if emphasisMatches(section, analysis.EmphasisAreas) {
		score++
	}

	// Senior roles weight experience more heavily.
	if section == types.SectionExperience && analysis.IsSenior() {
		score++
	}

	return score
}

// emphasisMatches reports whether any emphasis area mentions the section's
// associated keywords. The boost is applied at most once per section.
func emphasisMatches(section string, areas []string) bool {
	for _, area := range areas {
		areaLower := strings.ToLower(area)
		for _, keyword := range sectionKeywords[section] {
			if strings.Contains(areaLower, keyword) {
				return true
			}
		}
	}
	return false
}
