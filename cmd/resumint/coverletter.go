package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/letters"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter [url]",
	Short: "Write a cover letter for a posting",
	Long:  "Analyze a posting (or reuse a saved company's) and write a cover letter in the configured voice. The letter is saved as a text file next to the resume output.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCoverLetter,
}

var coverLetterCompany string

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterCompany, "company", "c", "", "Reuse a saved company's posting")
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := context.Background()

	voice, err := a.store.LoadVoice()
	if err != nil {
		return err
	}
	master, err := a.store.LoadMaster()
	if err != nil {
		return err
	}

	var jd *jdInput
	var existing *types.Company
	if coverLetterCompany != "" {
		existing, err = a.store.LoadCompany(coverLetterCompany)
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

	client, err := a.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

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

	a.printer.Printf("Role:   %s at %s", jobAnalysis.Title, jobAnalysis.Company)
	a.printer.Printf("Domain: %s", jobAnalysis.Domain)

	talkingPoints := ""
	addPoints, err := a.prompter.Confirm("Add specific talking points?", false)
	if err != nil {
		return err
	}
	if addPoints {
		talkingPoints, err = a.prompter.MultiLine("Enter talking points (end with a line containing only \".\"):")
		if err != nil {
			return err
		}
	}

	a.printer.Printf("Writing cover letter...")
	writer := letters.NewWriter(client)
	letter, err := writer.CoverLetter(ctx, jd.Text, jobAnalysis, master, voice, talkingPoints)
	if err != nil {
		return err
	}

	a.printer.Printf("")
	for _, line := range strings.Split(letter, "\n") {
		a.printer.Printf("  %s", line)
	}
	a.printer.Printf("")
	a.printer.Printf("%d words", len(strings.Fields(letter)))

	slug := store.Slugify(jobAnalysis.Company)
	if existing != nil {
		slug = existing.Slug
	}
	path, err := a.writeOutput(a.outputPath(slug, master.Name, "CoverLetter", ".txt"), letter)
	if err != nil {
		return err
	}
	a.printer.Printf("Saved: %s", path)

	if existing != nil {
		if existing.Analysis == nil {
			existing.Analysis = jobAnalysis
			if err := a.store.SaveCompany(existing); err != nil {
				return err
			}
			a.printer.Printf("Analysis cached for %q", existing.Slug)
		}
		return nil
	}

	save, err := a.prompter.Confirm("Save this company for future use?", true)
	if err != nil {
		return err
	}
	if save {
		company := &types.Company{
			Slug:     slug,
			Name:     jobAnalysis.Company,
			Role:     jobAnalysis.Title,
			JD:       jd.Text,
			Analysis: jobAnalysis,
		}
		if err := a.store.SaveCompany(company); err != nil {
			return err
		}
		a.printer.Printf("Company saved as %q", slug)
	}
	return nil
}
