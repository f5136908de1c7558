package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/analysis"
	"github.com/jonathan/resumint/internal/assembly"
	"github.com/jonathan/resumint/internal/latexc"
	"github.com/jonathan/resumint/internal/rendering"
	"github.com/jonathan/resumint/internal/revision"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

var customizeCmd = &cobra.Command{
	Use:   "customize [url]",
	Short: "Deep customization: rewrite bullets and tailor the full resume",
	Long:  "The full tailoring flow: analyze the posting, rank profiles, rewrite bullets toward the posting's language with per-bullet accept/reject, reorder sections, refine the summary, compile, and run the revision loop.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCustomize,
}

var customizeCompany string

func init() {
	customizeCmd.Flags().StringVarP(&customizeCompany, "company", "c", "", "Reuse a saved company's posting")
	rootCmd.AddCommand(customizeCmd)
}

func runCustomize(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// 1. Get the posting, either saved or fresh.
	var jd *jdInput
	var existing *types.Company
	if customizeCompany != "" {
		existing, err = a.store.LoadCompany(customizeCompany)
		if err != nil {
			return err
		}
		jd = &jdInput{Text: existing.JD}
		a.printer.Printf("Using saved JD for %s, %s", existing.Name, existing.Role)
	} else {
		urlFlag := ""
		if len(args) > 0 {
			urlFlag = args[0]
		}
		jd, err = a.collectJD(ctx, urlFlag)
		if err != nil {
			return err
		}
	}

	master, err := a.store.LoadMaster()
	if err != nil {
		return err
	}

	client, err := a.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// 2. Analyze, preferring the company record's analysis.
	var jobAnalysis *types.JobAnalysis
	if existing != nil && existing.Analysis != nil {
		jobAnalysis = existing.Analysis
		a.printer.Printf("Using cached analysis")
	} else {
		jobAnalysis, err = a.analyzeWithCache(ctx, client, jd, master)
		if err != nil {
			return err
		}
	}

	proceed, err := a.confirmDomainFit(jobAnalysis)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	report := analysis.BuildSkillReport(jobAnalysis)
	a.printer.PrintSkillReport(report)

	// 3. Learnable skills the user wants to claim.
	var learnable []string
	if len(report.Learnable) > 0 {
		choices := make([]string, len(report.Learnable))
		for i, s := range report.Learnable {
			choices[i] = fmt.Sprintf("%s, %s", s.Skill, s.Reason)
		}
		picked, err := a.prompter.MultiSelect("Include these learnable skills?", choices)
		if err != nil {
			return err
		}
		pickedSet := make(map[string]bool, len(picked))
		for _, c := range picked {
			pickedSet[c] = true
		}
		for i, s := range report.Learnable {
			if pickedSet[choices[i]] {
				learnable = append(learnable, s.Skill)
			}
		}
	}

	// 4. Choose a profile by ranking.
	profiles, err := a.store.ListProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found, run \"resumint init\" first")
	}
	profile, err := a.rankAndChooseProfile(ctx, profiles, jobAnalysis, master)
	if err != nil {
		return err
	}

	reviser := revision.NewReviser(client)

	// 5. Bullet rewriting with per-bullet accept/reject.
	overrides, err := a.rewriteBullets(ctx, reviser, master, profile, jobAnalysis)
	if err != nil {
		return err
	}

	// 6. Section reordering.
	sections, err := a.suggestSections(profile, jobAnalysis)
	if err != nil {
		return err
	}
	profile.Sections = sections

	// 7. Summary refinement.
	summaryOverride, err := a.refineSummary(ctx, reviser, master, profile, jobAnalysis)
	if err != nil {
		return err
	}

	generate, err := a.prompter.Confirm("Generate PDF?", true)
	if err != nil {
		return err
	}
	if !generate {
		return nil
	}

	// 8. Extra skills: adjacent matches plus confirmed learnable ones go
	// into the profile's first skill category.
	extraSkills := make(map[string][]string)
	var allExtra []string
	for _, s := range report.Adjacent {
		allExtra = append(allExtra, s.Skill)
	}
	allExtra = append(allExtra, learnable...)
	if len(allExtra) > 0 && len(profile.Skills) > 0 {
		extraSkills[profile.Skills[0]] = allExtra
	}

	doc := assembly.Assemble(master, profile, &assembly.Options{
		BulletOverrides: overrides,
		ExtraSkills:     extraSkills,
		SummaryOverride: summaryOverride,
	})
	tex := rendering.Render(doc)

	slug := store.Slugify(jobAnalysis.Company)
	if existing != nil {
		slug = existing.Slug
	}
	texPath, err := a.writeTex(slug, master.Name, tex)
	if err != nil {
		return err
	}
	a.printer.Printf("LaTeX written: %s", texPath)

	compiler := latexc.New(a.cfg.LatexCommand)
	a.printer.Printf("Compiling PDF...")
	pdfPath, err := compiler.Compile(ctx, texPath)
	if err != nil {
		return err
	}
	a.printer.Printf("PDF generated: %s", pdfPath)

	loop := revision.NewLoop(reviser, compiler, newLoopDriver(a.prompter, a.printer), texPath, pdfPath, jd.Text)
	pdfPath, err = loop.Run(ctx)
	if err != nil {
		return err
	}

	// 9. Save company record.
	if existing == nil {
		save, err := a.prompter.Confirm("Save this company for future use?", true)
		if err != nil {
			return err
		}
		if !save {
			return nil
		}
		existing = &types.Company{
			Slug:     slug,
			Name:     jobAnalysis.Company,
			Role:     jobAnalysis.Title,
			JD:       jd.Text,
			Analysis: jobAnalysis,
		}
	} else {
		existing.Analysis = jobAnalysis
	}
	version := a.store.NewVersion(existing, profile.Name, pdfPath)
	if err := a.store.SaveCompany(existing); err != nil {
		return err
	}
	a.printer.Printf("Version %d saved for %q", version.Version, existing.Slug)

	return nil
}

// rewriteBullets offers to rewrite every included bullet toward the posting
// and returns the accepted overrides keyed by bullet id.
func (a *app) rewriteBullets(ctx context.Context, reviser *revision.Reviser, master *types.MasterResume, profile *types.Profile, jobAnalysis *types.JobAnalysis) (map[string]string, error) {
	doRewrite, err := a.prompter.Confirm("Rewrite bullets to match JD language?", true)
	if err != nil {
		return nil, err
	}
	if !doRewrite {
		return nil, nil
	}

	var bullets []types.Bullet
	for _, ref := range profile.Experience {
		exp := master.FindExperience(ref.ID)
		if exp == nil {
			continue
		}
		wanted := ref.BulletIDSet()
		for _, bullet := range exp.Bullets {
			if wanted[bullet.ID] {
				bullets = append(bullets, bullet)
			}
		}
	}
	if len(bullets) == 0 {
		return nil, nil
	}

	a.printer.Printf("Rewriting %d bullets...", len(bullets))
	rewritten, err := reviser.RewriteBullets(ctx, bullets, jobAnalysis)
	if err != nil {
		return nil, err
	}
	if len(rewritten) == 0 {
		a.printer.Printf("No bullets changed")
		return nil, nil
	}

	var changed []types.Bullet
	var choices []string
	for _, bullet := range bullets {
		newText, ok := rewritten[bullet.ID]
		if !ok {
			continue
		}
		a.printer.Printf("  - %s", bullet.Text)
		a.printer.Printf("  + %s", newText)
		changed = append(changed, bullet)
		choices = append(choices, fmt.Sprintf("%s → %s", truncate(bullet.Text, 55), truncate(newText, 55)))
	}

	kept, err := a.prompter.MultiSelect("Keep these rewrites? (Enter for all)", choices)
	if err != nil {
		return nil, err
	}
	keptSet := make(map[string]bool, len(kept))
	for _, c := range kept {
		keptSet[c] = true
	}

	overrides := make(map[string]string)
	for i, bullet := range changed {
		if keptSet[choices[i]] {
			overrides[bullet.ID] = rewritten[bullet.ID]
		}
	}
	return overrides, nil
}

// suggestSections proposes the advised section order and returns the order
// to use.
func (a *app) suggestSections(profile *types.Profile, jobAnalysis *types.JobAnalysis) ([]string, error) {
	suggested := assembly.SuggestOrder(profile.Sections, jobAnalysis)
	if equalStrings(profile.Sections, suggested) {
		return profile.Sections, nil
	}

	a.printer.Printf("Current order:   %s", joinArrow(profile.Sections))
	a.printer.Printf("Suggested order: %s", joinArrow(suggested))
	use, err := a.prompter.Confirm("Use suggested section order?", true)
	if err != nil {
		return nil, err
	}
	if use {
		return suggested, nil
	}
	return profile.Sections, nil
}

// refineSummary offers an LLM-tailored summary and returns the override to
// apply, or empty to keep the profile's variant.
func (a *app) refineSummary(ctx context.Context, reviser *revision.Reviser, master *types.MasterResume, profile *types.Profile, jobAnalysis *types.JobAnalysis) (string, error) {
	variant := master.FindSummary(profile.Summary)
	if variant == nil || variant.Text == "" {
		return "", nil
	}

	refine, err := a.prompter.Confirm("Refine summary for this role?", true)
	if err != nil {
		return "", err
	}
	if !refine {
		return "", nil
	}

	a.printer.Printf("Refining summary...")
	refined, err := reviser.RefineSummary(ctx, variant.Text, jobAnalysis)
	if err != nil {
		a.printer.Printf("Summary refinement failed: %v", err)
		return "", nil
	}
	if refined == variant.Text {
		return "", nil
	}

	a.printer.Printf("  - %s", variant.Text)
	a.printer.Printf("  + %s", refined)
	accept, err := a.prompter.Confirm("Accept refined summary?", true)
	if err != nil {
		return "", err
	}
	if accept {
		return refined, nil
	}
	return "", nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinArrow(sections []string) string {
	out := ""
	for i, s := range sections {
		if i > 0 {
			out += " → "
		}
		out += s
	}
	return out
}
