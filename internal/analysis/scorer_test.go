package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/types"
)

func testMaster() *types.MasterResume {
	return &types.MasterResume{
		Name: "Test Candidate",
		Experience: []types.Experience{
			{
				ID:      "exp1",
				Company: "Acme",
				Title:   "Engineer",
				Bullets: []types.Bullet{
					{ID: "b1", Text: "Built React dashboards for analytics", Tags: []string{"react", "frontend"}},
					{ID: "b2", Text: "Migrated CI pipeline to containers", Tags: []string{"devops", "ci"}},
					{ID: "b3", Text: "Led performance optimization effort", Tags: []string{"performance"}},
				},
			},
		},
		Skills: []types.SkillCategory{
			{ID: "sk1", Category: "Frontend", Items: []string{"React", "TypeScript"}},
			{ID: "sk2", Category: "Backend", Items: []string{"Node.js", "PostgreSQL"}},
		},
	}
}

func testProfile() *types.Profile {
	return &types.Profile{
		Name:       "frontend",
		Sections:   []string{"experience", "skills"},
		Experience: []types.EntryRef{{ID: "exp1", Bullets: []string{"b1", "b2"}}},
		Skills:     []string{"sk1"},
	}
}

func TestScoreProfile_SkillCoverageOnlyCountsExactAndAdjacent(t *testing.T) {
	// Spec scenario: react is EXACT and matches; kubernetes is DOMAIN_CHANGE
	// and excluded from the denominator, so coverage is 100.
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			{Skill: "react", Category: types.SkillExact, Priority: types.PriorityMustHave},
			{Skill: "kubernetes", Category: types.SkillDomainChange, Priority: types.PriorityMustHave},
		},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 100, score.SkillCoverage)
}

func TestScoreProfile_CaseInsensitiveBidirectionalMatch(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			// "typescript" is contained in the profile item "TypeScript".
			{Skill: "TYPESCRIPT", Category: types.SkillExact},
			// profile item "react" is contained in "react native".
			{Skill: "React Native", Category: types.SkillAdjacent},
		},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 100, score.SkillCoverage)
}

func TestScoreProfile_EmptyRequirementSkillsYieldZeroCoverage(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			{Skill: "java", Category: types.SkillLearnable},
		},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 0, score.SkillCoverage)
}

func TestScoreProfile_TagOverlap(t *testing.T) {
	analysis := &types.JobAnalysis{
		// "frontend" matches the b1 tag; "mobile apps" matches nothing.
		EmphasisAreas: []string{"frontend", "mobile apps"},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 50, score.TagOverlap)
}

func TestScoreProfile_TagOverlapIgnoresExcludedBullets(t *testing.T) {
	profile := testProfile()
	profile.Experience = []types.EntryRef{{ID: "exp1", Bullets: []string{"b1"}}}

	analysis := &types.JobAnalysis{
		// "ci" tags exist only on b2, which the profile no longer includes.
		EmphasisAreas: []string{"ci"},
	}

	score := ScoreProfile(profile, analysis, testMaster())
	assert.Equal(t, 0, score.TagOverlap)
}

func TestScoreProfile_BulletRelevance(t *testing.T) {
	analysis := &types.JobAnalysis{
		// b1 matches via verbatim key term "dashboards"; b2 matches nothing.
		KeyTerminology: []string{"dashboards"},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 50, score.BulletRelevance)
}

func TestScoreProfile_BulletRelevanceViaTagSkillMatch(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			{Skill: "DevOps Engineering", Category: types.SkillExact},
		},
	}

	// b2 has the "devops" tag, which is a substring of the requirement skill.
	// sk1's items don't match, so coverage is 0 but relevance is 50.
	score := ScoreProfile(testProfile(), analysis, testMaster())
	assert.Equal(t, 0, score.SkillCoverage)
	assert.Equal(t, 50, score.BulletRelevance)
}

func TestScoreProfile_WeightedTotal(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			{Skill: "react", Category: types.SkillExact},
		},
		EmphasisAreas:  []string{"frontend", "mobile apps"},
		KeyTerminology: []string{"dashboards"},
	}

	score := ScoreProfile(testProfile(), analysis, testMaster())
	// coverage 100, overlap 50, relevance 50 -> 0.4*100 + 0.3*50 + 0.3*50 = 70
	assert.Equal(t, 100, score.SkillCoverage)
	assert.Equal(t, 50, score.TagOverlap)
	assert.Equal(t, 50, score.BulletRelevance)
	assert.Equal(t, 70, score.TotalScore)
	assert.Equal(t, "Skills: 100% | Emphasis: 50% | Bullets: 50%", score.Breakdown)
}

func TestScoreProfile_EmptyInputsNeverError(t *testing.T) {
	score := ScoreProfile(&types.Profile{Name: "empty"}, &types.JobAnalysis{}, &types.MasterResume{})
	assert.Equal(t, 0, score.TotalScore)
	assert.Equal(t, 0, score.SkillCoverage)
	assert.Equal(t, 0, score.TagOverlap)
	assert.Equal(t, 0, score.BulletRelevance)
}

func TestScoreProfile_DanglingExperienceRefSkipped(t *testing.T) {
	profile := testProfile()
	profile.Experience = append(profile.Experience, types.EntryRef{ID: "gone", Bullets: []string{"x"}})

	analysis := &types.JobAnalysis{KeyTerminology: []string{"dashboards"}}
	score := ScoreProfile(profile, analysis, testMaster())
	// Only b1 and b2 counted; the dangling ref contributes nothing.
	assert.Equal(t, 50, score.BulletRelevance)
}

func TestScoreProfile_BoundsHold(t *testing.T) {
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{
			{Skill: "react", Category: types.SkillExact},
			{Skill: "typescript", Category: types.SkillAdjacent},
		},
		EmphasisAreas:  []string{"react", "frontend", "performance"},
		KeyTerminology: []string{"react", "pipeline", "performance"},
	}
	profile := testProfile()
	profile.Experience = []types.EntryRef{{ID: "exp1", Bullets: []string{"b1", "b2", "b3"}}}

	score := ScoreProfile(profile, analysis, testMaster())
	for _, v := range []int{score.TotalScore, score.SkillCoverage, score.TagOverlap, score.BulletRelevance} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestScoreProfiles_SortedDescending(t *testing.T) {
	master := testMaster()
	analysis := &types.JobAnalysis{
		Skills: []types.JDSkill{{Skill: "react", Category: types.SkillExact}},
	}

	weak := &types.Profile{Name: "weak", Skills: []string{"sk2"}}
	strong := testProfile()

	scores, err := ScoreProfiles(context.Background(), []*types.Profile{weak, strong}, analysis, master)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "frontend", scores[0].ProfileName)
	assert.Equal(t, "weak", scores[1].ProfileName)
	assert.GreaterOrEqual(t, scores[0].TotalScore, scores[1].TotalScore)
}
