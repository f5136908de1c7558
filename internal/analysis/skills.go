package analysis

import (
	"math"

	"github.com/jonathan/resumint/internal/types"
)

// SkillReport groups a job analysis's skills by classification and carries
// the must-have coverage score.
type SkillReport struct {
	Exact        []types.JDSkill
	Adjacent     []types.JDSkill
	Learnable    []types.JDSkill
	DomainChange []types.JDSkill
	MatchScore   int
}

// BuildSkillReport groups skills by classification and computes the must-have
// match score: the share of must-have skills classified EXACT or ADJACENT.
func BuildSkillReport(analysis *types.JobAnalysis) SkillReport {
	report := SkillReport{
		Exact:        analysis.SkillsInCategory(types.SkillExact),
		Adjacent:     analysis.SkillsInCategory(types.SkillAdjacent),
		Learnable:    analysis.SkillsInCategory(types.SkillLearnable),
		DomainChange: analysis.SkillsInCategory(types.SkillDomainChange),
	}

	mustHaves := 0
	covered := 0
	for _, s := range analysis.Skills {
		if s.Priority != types.PriorityMustHave {
			continue
		}
		mustHaves++
		if s.Category == types.SkillExact || s.Category == types.SkillAdjacent {
			covered++
		}
	}
	if mustHaves > 0 {
		report.MatchScore = int(math.Round(float64(covered) / float64(mustHaves) * 100))
	}

	return report
}
