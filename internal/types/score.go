package types

// ProfileScore is the result of scoring one profile against a job analysis.
// All values are integer percentages in [0, 100]. Ephemeral: recomputed per
// scoring run, never persisted.
type ProfileScore struct {
	ProfileName     string `json:"profile_name"`
	TotalScore      int    `json:"total_score"`
	SkillCoverage   int    `json:"skill_coverage"`
	TagOverlap      int    `json:"tag_overlap"`
	BulletRelevance int    `json:"bullet_relevance"`
	Breakdown       string `json:"breakdown"`
}
