package types

// Seniority levels recognized in job analyses.
const (
	SeniorityJunior    = "junior"
	SeniorityMid       = "mid"
	SenioritySenior    = "senior"
	SeniorityStaff     = "staff"
	SeniorityPrincipal = "principal"
	SeniorityUnknown   = "unknown"
)

// Skill classification categories relative to the candidate's known skills.
const (
	SkillExact        = "EXACT"
	SkillAdjacent     = "ADJACENT"
	SkillLearnable    = "LEARNABLE"
	SkillDomainChange = "DOMAIN_CHANGE"
)

// Domain fit assessments.
const (
	FitStrong   = "strong"
	FitModerate = "moderate"
	FitWeak     = "weak"
	FitMismatch = "mismatch"
)

// Skill priority levels.
const (
	PriorityMustHave   = "must-have"
	PriorityNiceToHave = "nice-to-have"
)

// JobAnalysis is the structured representation of a job posting's extracted
// requirements. It is produced externally (LLM extraction), validated at the
// boundary, and treated as immutable by scoring and assembly.
type JobAnalysis struct {
	Title                 string    `json:"title"`
	Company               string    `json:"company"`
	Seniority             string    `json:"seniority"`
	Domain                string    `json:"domain"`
	DomainFit             string    `json:"domainFit"`
	DomainFitReason       string    `json:"domainFitReason"`
	Skills                []JDSkill `json:"skills"`
	KeyTerminology        []string  `json:"keyTerminology"`
	EmphasisAreas         []string  `json:"emphasisAreas"`
	SummaryRecommendation string    `json:"summaryRecommendation"`
}

// JDSkill is one required skill with its classification against the
// candidate's inventory.
type JDSkill struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// SkillsInCategory returns the skills with the given classification.
func (a *JobAnalysis) SkillsInCategory(category string) []JDSkill {
	var out []JDSkill
	for _, s := range a.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// IsSenior reports whether the analysis targets a senior-or-above role.
func (a *JobAnalysis) IsSenior() bool {
	switch a.Seniority {
	case SenioritySenior, SeniorityStaff, SeniorityPrincipal:
		return true
	}
	return false
}
