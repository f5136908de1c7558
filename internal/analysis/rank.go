package analysis

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resumint/internal/types"
)

// ScoreProfiles scores every profile against the analysis and returns the
// results sorted by descending total score, ties kept in input order.
// Profiles share no state, so they are scored concurrently.
func ScoreProfiles(ctx context.Context, profiles []*types.Profile, analysis *types.JobAnalysis, master *types.MasterResume) ([]types.ProfileScore, error) {
	scores := make([]types.ProfileScore, len(profiles))

	g, _ := errgroup.WithContext(ctx)
	for i, profile := range profiles {
		g.Go(func() error {
			scores[i] = ScoreProfile(profile, analysis, master)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})

	return scores, nil
}
