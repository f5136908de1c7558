package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resumint/internal/analysis"
	"github.com/jonathan/resumint/internal/config"
	"github.com/jonathan/resumint/internal/fetch"
	"github.com/jonathan/resumint/internal/llm"
	"github.com/jonathan/resumint/internal/observability"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

// app bundles the dependencies every command needs.
type app struct {
	cfg      *config.Config
	store    *store.Store
	printer  *observability.Printer
	prompter Prompter
}

// loadApp resolves the data directory, loads config, and wires the shared
// dependencies.
func loadApp() (*app, error) {
	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = os.Getenv(config.EnvDataDir)
	}
	if dataDir == "" {
		var err error
		dataDir, err = store.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	return &app{
		cfg:      cfg,
		store:    store.New(cfg.DataDir),
		printer:  observability.NewPrinter(os.Stdout),
		prompter: NewTerminalPrompter(os.Stdin, os.Stdout),
	}, nil
}

// newLLMClient creates the Gemini client from the configured key.
func (a *app) newLLMClient(ctx context.Context) (llm.Client, error) {
	apiKey, err := a.cfg.RequireAPIKey()
	if err != nil {
		return nil, err
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

// jdInput is a collected job description and, when fetched, its source URL.
type jdInput struct {
	Text      string
	SourceURL string
}

// collectJD resolves a job description from a URL flag, an interactively
// entered URL, or pasted text. Fetched postings go through the URL cache.
func (a *app) collectJD(ctx context.Context, urlFlag string) (*jdInput, error) {
	return a.collectText(ctx, urlFlag,
		"Job posting URL (or press Enter to paste manually):",
		"Paste the job description (end with a line containing only \".\"):")
}

// collectText resolves free text from a URL flag, an interactively entered
// URL, or pasted input. Fetched pages go through the URL cache.
func (a *app) collectText(ctx context.Context, urlFlag, urlPrompt, pastePrompt string) (*jdInput, error) {
	urlInput := strings.TrimSpace(urlFlag)
	if urlInput == "" {
		entered, err := a.prompter.Input(urlPrompt)
		if err != nil {
			return nil, err
		}
		urlInput = strings.TrimSpace(entered)
	}

	if urlInput != "" && fetch.IsURL(urlInput) {
		if cached := a.store.CachedScrape(urlInput); cached != nil {
			a.printer.Printf("Using cached content from %s", describeSource(cached.Title, urlInput))
			return &jdInput{Text: cached.Text, SourceURL: urlInput}, nil
		}

		a.printer.Printf("Fetching content from URL...")
		opts := fetch.DefaultOptions()
		opts.Browser = a.cfg.UseBrowser
		result, err := fetch.Scrape(ctx, urlInput, opts)
		if err != nil {
			a.printer.Printf("Failed to fetch URL: %v", err)
		} else {
			a.printer.Printf("Fetched from %s", describeSource(result.Title, result.URL))
			use, err := a.prompter.Confirm("Use this content?", true)
			if err != nil {
				return nil, err
			}
			if use {
				if err := a.store.CacheScrape(urlInput, result.Text, result.Title); err != nil {
					a.printer.Printf("Warning: could not cache scrape: %v", err)
				}
				return &jdInput{Text: result.Text, SourceURL: urlInput}, nil
			}
		}
	}

	text, err := a.prompter.MultiLine(pastePrompt)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text provided")
	}
	return &jdInput{Text: text}, nil
}

// analyzeWithCache returns the analysis for a posting, reusing the URL cache
// when the posting came from a URL.
func (a *app) analyzeWithCache(ctx context.Context, client llm.Client, jd *jdInput, master *types.MasterResume) (*types.JobAnalysis, error) {
	if jd.SourceURL != "" {
		if cached := a.store.CachedAnalysis(jd.SourceURL); cached != nil {
			a.printer.Printf("Using cached analysis")
			return cached, nil
		}
	}

	a.printer.Printf("Analyzing job description...")
	result, err := analysis.AnalyzeJD(ctx, client, jd.Text, master)
	if err != nil {
		return nil, err
	}

	if jd.SourceURL != "" {
		if err := a.store.CacheAnalysis(jd.SourceURL, result); err != nil {
			a.printer.Printf("Warning: could not cache analysis: %v", err)
		}
	}
	return result, nil
}

// confirmDomainFit surfaces the fit assessment and, on a mismatch, asks
// whether to continue. Returns false when the user bails out.
func (a *app) confirmDomainFit(jobAnalysis *types.JobAnalysis) (bool, error) {
	a.printer.Printf("Role:      %s at %s", jobAnalysis.Title, jobAnalysis.Company)
	a.printer.Printf("Seniority: %s", jobAnalysis.Seniority)
	a.printer.Printf("Domain:    %s", jobAnalysis.Domain)
	a.printer.Printf("Fit:       %s %s", observability.FitBadge(jobAnalysis.DomainFit), jobAnalysis.DomainFit)

	switch jobAnalysis.DomainFit {
	case types.FitMismatch:
		a.printer.Printf("Domain mismatch: %s", jobAnalysis.DomainFitReason)
		return a.prompter.Confirm("Continue anyway?", false)
	case types.FitWeak:
		a.printer.Printf("Weak fit: %s", jobAnalysis.DomainFitReason)
	}
	return true, nil
}

// rankAndChooseProfile scores all profiles, shows the ranking, and asks
// which to use. The best-scoring profile is the default.
func (a *app) rankAndChooseProfile(ctx context.Context, profiles []*types.Profile, jobAnalysis *types.JobAnalysis, master *types.MasterResume) (*types.Profile, error) {
	scores, err := analysis.ScoreProfiles(ctx, profiles, jobAnalysis, master)
	if err != nil {
		return nil, err
	}
	a.printer.PrintScores(scores)

	choices := make([]string, len(scores))
	for i, s := range scores {
		choices[i] = s.ProfileName
	}
	selected, err := a.prompter.Select("Use profile:", choices, choices[0])
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.Name == selected {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", selected)
}

// findProfile returns the named profile from a loaded list.
func findProfile(profiles []*types.Profile, name string) *types.Profile {
	for _, p := range profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// outputPath places a named artifact for a slug in the output directory,
// e.g. output/acme/Jordan_Rivera_Resume.tex.
func (a *app) outputPath(slug, masterName, kind, ext string) string {
	base := strings.ReplaceAll(strings.TrimSpace(masterName), " ", "_")
	if base == "" {
		base = kind
	} else {
		base += "_" + kind
	}
	return filepath.Join(a.store.OutputDir(), slug, base+ext)
}

// texPath places a slug's LaTeX source in the output directory.
func (a *app) texPath(slug, masterName string) string {
	return a.outputPath(slug, masterName, "Resume", ".tex")
}

// writeTex writes rendered LaTeX to the slug's output path.
func (a *app) writeTex(slug, masterName, tex string) (string, error) {
	return a.writeOutput(a.texPath(slug, masterName), tex)
}

// writeOutput writes an artifact, creating its directory as needed.
func (a *app) writeOutput(path, content string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return path, nil
}

func describeSource(title, url string) string {
	if title != "" {
		return fmt.Sprintf("%q", title)
	}
	return url
}
