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
)

var quickCmd = &cobra.Command{
	Use:   "quick [url]",
	Short: "Score profiles and generate a resume without rewriting",
	Long:  "Analyze a job description, rank profiles against it, and compile the chosen profile as-is. The fastest path from posting to PDF.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuick,
}

var quickProfile string

func init() {
	quickCmd.Flags().StringVarP(&quickProfile, "profile", "p", "", "Use this profile instead of ranking")
	rootCmd.AddCommand(quickCmd)
}

func runQuick(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := context.Background()

	urlFlag := ""
	if len(args) > 0 {
		urlFlag = args[0]
	}
	jd, err := a.collectJD(ctx, urlFlag)
	if err != nil {
		return err
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

	jobAnalysis, err := a.analyzeWithCache(ctx, client, jd, master)
	if err != nil {
		return err
	}

	proceed, err := a.confirmDomainFit(jobAnalysis)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	a.printer.PrintSkillReport(analysis.BuildSkillReport(jobAnalysis))

	profiles, err := a.store.ListProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found, run \"resumint init\" first")
	}

	profile := findProfile(profiles, quickProfile)
	if quickProfile != "" && profile == nil {
		return fmt.Errorf("profile %q not found", quickProfile)
	}
	if profile == nil {
		profile, err = a.rankAndChooseProfile(ctx, profiles, jobAnalysis, master)
		if err != nil {
			return err
		}
	}

	doc := assembly.Assemble(master, profile, nil)
	tex := rendering.Render(doc)

	slug := store.Slugify(jobAnalysis.Company) + "-quick"
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

	loop := revision.NewLoop(
		revision.NewReviser(client),
		compiler,
		newLoopDriver(a.prompter, a.printer),
		texPath, pdfPath, jd.Text,
	)
	if _, err := loop.Run(ctx); err != nil {
		return err
	}

	return nil
}
