package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage saved target companies",
}

var companyAddCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Save a target company with its job posting",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCompanyAdd,
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved companies",
	RunE:  runCompanyList,
}

var companyShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a saved company's details and versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyShow,
}

var companyRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a saved company",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyRemove,
}

func init() {
	companyCmd.AddCommand(companyAddCmd, companyListCmd, companyShowCmd, companyRemoveCmd)
	rootCmd.AddCommand(companyCmd)
}

func runCompanyAdd(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	name, err := a.prompter.Input("Company name:")
	if err != nil {
		return err
	}
	role, err := a.prompter.Input("Role/position:")
	if err != nil {
		return err
	}

	defaultSlug := store.Slugify(name)
	slug, err := a.prompter.Input("Slug (Enter for \"" + defaultSlug + "\"):")
	if err != nil {
		return err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = defaultSlug
	}

	urlFlag := ""
	if len(args) > 0 {
		urlFlag = args[0]
	}
	jd, err := a.collectJD(context.Background(), urlFlag)
	if err != nil {
		return err
	}

	company := &types.Company{
		Slug: slug,
		Name: strings.TrimSpace(name),
		Role: strings.TrimSpace(role),
		JD:   jd.Text,
	}
	if err := a.store.SaveCompany(company); err != nil {
		return err
	}

	a.printer.Printf("Company %q saved as %q", company.Name, slug)
	a.printer.Printf("Run \"resumint customize --company %s\" to generate a resume", slug)
	return nil
}

func runCompanyList(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	companies, err := a.store.ListCompanies()
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		a.printer.Printf("No companies saved yet. Run \"resumint company add\" to add one.")
		return nil
	}

	a.printer.Printf("%-20s %-25s %-25s %s", "SLUG", "COMPANY", "ROLE", "VERSIONS")
	for _, c := range companies {
		a.printer.Printf("%-20s %-25s %-25s %d", c.Slug, c.Name, c.Role, len(c.Versions))
	}
	return nil
}

func runCompanyShow(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	company, err := a.store.LoadCompany(args[0])
	if err != nil {
		return err
	}

	a.printer.PrintVersions(company)
	if company.Analysis != nil {
		a.printer.PrintAnalysis(company.Analysis)
	}

	preview := company.JD
	if len(preview) > 300 {
		preview = preview[:300] + "..."
	}
	a.printer.Printf("JD preview:")
	a.printer.Printf("%s", preview)
	return nil
}

func runCompanyRemove(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	slug := args[0]

	company, err := a.store.LoadCompany(slug)
	if err != nil {
		return err
	}
	a.printer.Printf("%s, %s", company.Name, company.Role)
	a.printer.Printf("%d resume version(s)", len(company.Versions))

	confirmed, err := a.prompter.Confirm("Delete \""+slug+"\" and all its data?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		a.printer.Printf("Cancelled")
		return nil
	}

	if err := a.store.RemoveCompany(slug); err != nil {
		return err
	}
	a.printer.Printf("Company %q removed", slug)
	return nil
}
