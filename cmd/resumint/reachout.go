package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/letters"
	"github.com/jonathan/resumint/internal/types"
)

var reachoutCmd = &cobra.Command{
	Use:   "reachout [url]",
	Short: "Write a LinkedIn connection note and follow-up message",
	Long:  "Write a LinkedIn outreach pair (connection note plus follow-up DM) for a target person, grounded in your resume and optionally a specific role's posting.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReachout,
}

var reachoutCompany string

func init() {
	reachoutCmd.Flags().StringVarP(&reachoutCompany, "company", "c", "", "Use a saved company's posting as role context")
	rootCmd.AddCommand(reachoutCmd)
}

func runReachout(_ *cobra.Command, args []string) error {
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

	urlFlag := ""
	if len(args) > 0 {
		urlFlag = args[0]
	}
	profile, err := a.collectText(ctx, urlFlag,
		"LinkedIn profile URL (or press Enter to paste manually):",
		"Paste the target person's LinkedIn profile text (end with a line containing only \".\"):")
	if err != nil {
		return err
	}

	// Optional role context, from a saved company or pasted fresh.
	jd := ""
	var existing *types.Company
	if reachoutCompany != "" {
		existing, err = a.store.LoadCompany(reachoutCompany)
		if err != nil {
			return err
		}
		jd = existing.JD
		a.printer.Printf("Using saved JD for %s, %s", existing.Name, existing.Role)
	} else {
		hasJD, err := a.prompter.Confirm("Add a specific role/JD for context?", false)
		if err != nil {
			return err
		}
		if hasJD {
			jd, err = a.prompter.MultiLine("Paste the job description (end with a line containing only \".\"):")
			if err != nil {
				return err
			}
		}
	}

	client, err := a.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	a.printer.Printf("Crafting outreach...")
	writer := letters.NewWriter(client)
	result, err := writer.Reachout(ctx, profile.Text, master, voice, jd)
	if err != nil {
		return err
	}

	a.printer.Printf("")
	a.printer.Printf("Connection note (%d characters):", len(result.ConnectionNote))
	a.printer.Printf("  %s", result.ConnectionNote)
	a.printer.Printf("")
	a.printer.Printf("Follow-up DM (%d words):", wordCount(result.FollowUpMessage))
	a.printer.Printf("  %s", result.FollowUpMessage)

	if existing != nil {
		save, err := a.prompter.Confirm("Save reachout to company record?", true)
		if err != nil {
			return err
		}
		if save {
			existing.Reachout = result
			if err := a.store.SaveCompany(existing); err != nil {
				return err
			}
			a.printer.Printf("Reachout saved to %q", existing.Slug)
		}
	}
	return nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
