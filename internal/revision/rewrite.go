package revision

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resumint/internal/llm"
	"github.com/jonathan/resumint/internal/prompts"
	"github.com/jonathan/resumint/internal/types"
)

// maxParallelRewrites bounds concurrent bullet rewrite calls so a large
// profile does not hammer the provider.
const maxParallelRewrites = 4

// Reviser implements Rewriter on top of an LLM client. It also exposes
// content-level rewrites used while assembling a document.
type Reviser struct {
	client llm.Client
}

// NewReviser creates a Reviser backed by the given client.
func NewReviser(client llm.Client) *Reviser {
	return &Reviser{client: client}
}

// Revise asks the model for a full revised document. The job description is
// optional context; when present it is prepended so edits can lean on the
// target role's language.
func (r *Reviser) Revise(ctx context.Context, source, instruction, jdContext string) (string, error) {
	jdBlock := ""
	if strings.TrimSpace(jdContext) != "" {
		jdBlock = fmt.Sprintf("Target job description (for context):\n---\n%s\n---\n\n", jdContext)
	}

	template, err := prompts.Get("revision.json", "revise_document")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"JDBlock":      jdBlock,
		"Tex":          source,
		"Instructions": instruction,
	})

	revised, err := r.client.Generate(ctx, prompt, llm.TierDeep)
	if err != nil {
		return "", fmt.Errorf("revision request failed: %w", err)
	}
	return llm.CleanLaTeXBlock(revised), nil
}

// RewriteBullet rephrases one bullet toward the analyzed job. The original
// text is returned unchanged on error so callers can degrade gracefully.
func (r *Reviser) RewriteBullet(ctx context.Context, bullet string, analysis *types.JobAnalysis) (string, error) {
	template, err := prompts.Get("rewriting.json", "bullet_rewrite")
	if err != nil {
		return bullet, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Bullet":        bullet,
		"Terminology":   strings.Join(analysis.KeyTerminology, ", "),
		"EmphasisAreas": strings.Join(analysis.EmphasisAreas, ", "),
	})

	rewritten, err := r.client.Generate(ctx, prompt, llm.TierFast)
	if err != nil {
		return bullet, fmt.Errorf("bullet rewrite failed: %w", err)
	}
	rewritten = strings.Trim(strings.TrimSpace(rewritten), `"`)
	if rewritten == "" {
		return bullet, nil
	}
	return rewritten, nil
}

// RewriteBullets rewrites a batch of bullets in parallel and returns a map
// from bullet ID to rewritten text. Individual failures fall back to the
// original text rather than failing the batch.
func (r *Reviser) RewriteBullets(ctx context.Context, bullets []types.Bullet, analysis *types.JobAnalysis) (map[string]string, error) {
	results := make([]string, len(bullets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelRewrites)
	for i, bullet := range bullets {
		g.Go(func() error {
			text, err := r.RewriteBullet(gctx, bullet.Text, analysis)
			if err != nil {
				text = bullet.Text
			}
			results[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overrides := make(map[string]string, len(bullets))
	for i, bullet := range bullets {
		if results[i] != bullet.Text {
			overrides[bullet.ID] = results[i]
		}
	}
	return overrides, nil
}

// RefineSummary tailors a summary paragraph to the analyzed job.
func (r *Reviser) RefineSummary(ctx context.Context, summary string, analysis *types.JobAnalysis) (string, error) {
	template, err := prompts.Get("rewriting.json", "summary_refine")
	if err != nil {
		return summary, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Title":         analysis.Title,
		"Summary":       summary,
		"Terminology":   strings.Join(analysis.KeyTerminology, ", "),
		"EmphasisAreas": strings.Join(analysis.EmphasisAreas, ", "),
	})

	refined, err := r.client.Generate(ctx, prompt, llm.TierFast)
	if err != nil {
		return summary, fmt.Errorf("summary refinement failed: %w", err)
	}
	refined = strings.Trim(strings.TrimSpace(refined), `"`)
	if refined == "" {
		return summary, nil
	}
	return refined, nil
}
