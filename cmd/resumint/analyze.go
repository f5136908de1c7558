package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze a job description without generating anything",
	Long:  "Analyze a job description and print the extracted requirements and skill report. Useful for checking fit before committing to a full customization.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
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

	a.printer.PrintAnalysis(jobAnalysis)
	a.printer.PrintSkillReport(analysis.BuildSkillReport(jobAnalysis))

	if a.cfg.Verbose {
		profiles, err := a.store.ListProfiles()
		if err != nil {
			return err
		}
		if len(profiles) > 0 {
			scores, err := analysis.ScoreProfiles(ctx, profiles, jobAnalysis, master)
			if err != nil {
				return err
			}
			a.printer.PrintScores(scores)
		}
	}

	return nil
}
