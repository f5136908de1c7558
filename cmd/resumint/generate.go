package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/assembly"
	"github.com/jonathan/resumint/internal/latexc"
	"github.com/jonathan/resumint/internal/rendering"
	"github.com/jonathan/resumint/internal/revision"
)

var generateCmd = &cobra.Command{
	Use:   "generate <slug>",
	Short: "Re-generate a resume for a saved company",
	Long:  "Re-generate a resume for a saved company. An existing LaTeX file for the company is recompiled and revised in place; otherwise a fresh document is assembled from a chosen profile.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	slug := args[0]

	company, err := a.store.LoadCompany(slug)
	if err != nil {
		return err
	}
	a.printer.Printf("%s, %s", company.Name, company.Role)

	master, err := a.store.LoadMaster()
	if err != nil {
		return err
	}

	client, err := a.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	compiler := latexc.New(a.cfg.LatexCommand)
	reviser := revision.NewReviser(client)
	driver := newLoopDriver(a.prompter, a.printer)

	// Existing LaTeX wins: recompile it and go straight to revision.
	texPath := a.texPath(slug, master.Name)
	if _, err := os.Stat(texPath); err == nil {
		a.printer.Printf("Using existing LaTeX: %s", texPath)
		a.printer.Printf("Compiling PDF...")
		pdfPath, err := compiler.Compile(ctx, texPath)
		if err != nil {
			return err
		}
		a.printer.Printf("PDF generated: %s", pdfPath)

		loop := revision.NewLoop(reviser, compiler, driver, texPath, pdfPath, company.JD)
		_, err = loop.Run(ctx)
		return err
	}

	// No existing source: assemble fresh from a profile.
	profiles, err := a.store.ListProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found, run \"resumint init\" first")
	}

	defaultProfile := profiles[0].Name
	if n := len(company.Versions); n > 0 && findProfile(profiles, company.Versions[n-1].ProfileUsed) != nil {
		defaultProfile = company.Versions[n-1].ProfileUsed
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	selected, err := a.prompter.Select("Profile:", names, defaultProfile)
	if err != nil {
		return err
	}
	profile := findProfile(profiles, selected)
	if profile == nil {
		return fmt.Errorf("profile %q not found", selected)
	}

	doc := assembly.Assemble(master, profile, nil)
	tex := rendering.Render(doc)

	texPath, err = a.writeTex(slug, master.Name, tex)
	if err != nil {
		return err
	}
	a.printer.Printf("LaTeX written: %s", texPath)

	a.printer.Printf("Compiling PDF...")
	pdfPath, err := compiler.Compile(ctx, texPath)
	if err != nil {
		return err
	}
	a.printer.Printf("PDF generated: %s", pdfPath)

	loop := revision.NewLoop(reviser, compiler, driver, texPath, pdfPath, company.JD)
	pdfPath, err = loop.Run(ctx)
	if err != nil {
		return err
	}

	version := a.store.NewVersion(company, selected, pdfPath)
	if err := a.store.SaveCompany(company); err != nil {
		return err
	}
	a.printer.Printf("Version %d saved", version.Version)

	return nil
}
