// Package analysis provides job-description analysis and profile scoring.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resumint/internal/types"
)

// Weights for the three scoring components. These are design constants kept
// from the shipped implementation, not derived values.
const (
	skillCoverageWeight   = 0.4
	tagOverlapWeight      = 0.3
	bulletRelevanceWeight = 0.3
)

// ScoreProfile scores how well a profile fits a job analysis. It never fails:
// absent or empty inputs yield zero sub-scores, not errors. All sub-scores
// and the total are integer percentages in [0, 100].
func ScoreProfile(profile *types.Profile, analysis *types.JobAnalysis, master *types.MasterResume) types.ProfileScore {
	jdSkillNames := requirementSkillNames(analysis)

	skillCoverage := scoreSkillCoverage(profile, master, jdSkillNames)
	tagOverlap := scoreTagOverlap(profile, master, analysis.EmphasisAreas)
	bulletRelevance := scoreBulletRelevance(profile, master, analysis.KeyTerminology, jdSkillNames)

	total := int(math.Round(
		float64(skillCoverage)*skillCoverageWeight +
			float64(tagOverlap)*tagOverlapWeight +
			float64(bulletRelevance)*bulletRelevanceWeight,
	))

	breakdown := fmt.Sprintf("Skills: %d%% | Emphasis: %d%% | Bullets: %d%%",
		skillCoverage, tagOverlap, bulletRelevance)

	return types.ProfileScore{
		ProfileName:     profile.Name,
		TotalScore:      total,
		SkillCoverage:   skillCoverage,
		TagOverlap:      tagOverlap,
		BulletRelevance: bulletRelevance,
		Breakdown:       breakdown,
	}
}

// requirementSkillNames collects the lowercase names of requirement skills
// classified EXACT or ADJACENT. Skills the candidate would have to learn or
// change domains for do not count against coverage.
func requirementSkillNames(analysis *types.JobAnalysis) []string {
	var names []string
	for _, s := range analysis.Skills {
		if s.Category == types.SkillExact || s.Category == types.SkillAdjacent {
			names = append(names, strings.ToLower(s.Skill))
		}
	}
	return names
}

// scoreSkillCoverage computes the percentage of requirement skills matched by
// the skill items in the profile's included categories.
func scoreSkillCoverage(profile *types.Profile, master *types.MasterResume, jdSkillNames []string) int {
	if len(jdSkillNames) == 0 {
		return 0
	}

	included := make(map[string]bool, len(profile.Skills))
	for _, id := range profile.Skills {
		included[id] = true
	}

	var profileItems []string
	for _, cat := range master.Skills {
		if !included[cat.ID] {
			continue
		}
		for _, item := range cat.Items {
			profileItems = append(profileItems, strings.ToLower(item))
		}
	}

	matched := 0
	for _, jdSkill := range jdSkillNames {
		for _, item := range profileItems {
			if substringMatch(item, jdSkill) {
				matched++
				break
			}
		}
	}

	return percent(matched, len(jdSkillNames))
}

// scoreTagOverlap computes the percentage of emphasis areas matched by the
// tags of bullets the profile actually includes.
func scoreTagOverlap(profile *types.Profile, master *types.MasterResume, emphasisAreas []string) int {
	if len(emphasisAreas) == 0 {
		return 0
	}

	tags := make(map[string]bool)
	forEachIncludedBullet(profile, master, func(bullet *types.Bullet) {
		for _, tag := range bullet.Tags {
			tags[strings.ToLower(tag)] = true
		}
	})

	matched := 0
	for _, area := range emphasisAreas {
		areaLower := strings.ToLower(area)
		for tag := range tags {
			if substringMatch(tag, areaLower) {
				matched++
				break
			}
		}
	}

	return percent(matched, len(emphasisAreas))
}

// scoreBulletRelevance computes the percentage of included bullets whose text
// contains a key term verbatim or whose tags match a requirement skill.
func scoreBulletRelevance(profile *types.Profile, master *types.MasterResume, keyTerms, jdSkillNames []string) int {
	termsLower := make([]string, len(keyTerms))
	for i, t := range keyTerms {
		termsLower[i] = strings.ToLower(t)
	}

	total := 0
	relevant := 0
	forEachIncludedBullet(profile, master, func(bullet *types.Bullet) {
		total++
		textLower := strings.ToLower(bullet.Text)
		for _, term := range termsLower {
			if strings.Contains(textLower, term) {
				relevant++
				return
			}
		}
		for _, tag := range bullet.Tags {
			tagLower := strings.ToLower(tag)
			for _, skill := range jdSkillNames {
				if substringMatch(tagLower, skill) {
					relevant++
					return
				}
			}
		}
	})

	return percent(relevant, total)
}

// forEachIncludedBullet visits every master bullet the profile includes, in
// master order. Dangling entry or bullet ids are skipped.
func forEachIncludedBullet(profile *types.Profile, master *types.MasterResume, visit func(*types.Bullet)) {
	for _, ref := range profile.Experience {
		exp := master.FindExperience(ref.ID)
		if exp == nil {
			continue
		}
		wanted := ref.BulletIDSet()
		for i := range exp.Bullets {
			if wanted[exp.Bullets[i].ID] {
				visit(&exp.Bullets[i])
			}
		}
	}
}

// substringMatch reports whether either lowercase string contains the other.
func substringMatch(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// percent returns the integer percentage matched/total, 0 when total is 0.
func percent(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}
