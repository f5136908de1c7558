// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumint/internal/analysis"
	"github.com/jonathan/resumint/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// scoreBarWidth is the character width of a full score bar
	scoreBarWidth = 20
)

// Printer handles formatted output for analysis summaries and rankings.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes a plain formatted line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// FitBadge returns a one-glyph marker for a domain fit level.
func FitBadge(fit string) string {
	switch fit {
	case types.FitStrong:
		return "●"
	case types.FitModerate:
		return "◐"
	case types.FitWeak:
		return "○"
	case types.FitMismatch:
		return "✗"
	default:
		return "?"
	}
}

// ScoreBar renders a 0-100 score as a fixed-width bar.
func ScoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * scoreBarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
}

// PrintAnalysis outputs a human-readable summary of a job analysis.
func (p *Printer) PrintAnalysis(a *types.JobAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", a.Company))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", a.Title))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", a.Seniority))
	sb.WriteString(fmt.Sprintf("Domain:    %s\n", a.Domain))
	sb.WriteString(fmt.Sprintf("Fit:       %s %s\n", FitBadge(a.DomainFit), a.DomainFit))
	if a.DomainFitReason != "" {
		sb.WriteString(fmt.Sprintf("           %s\n", a.DomainFitReason))
	}

	if len(a.EmphasisAreas) > 0 {
		sb.WriteString("\nEmphasis:\n")
		count := min(len(a.EmphasisAreas), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", a.EmphasisAreas[i]))
		}
		if len(a.EmphasisAreas) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(a.EmphasisAreas)-maxItemsToShow))
		}
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillReport outputs the skill classification breakdown.
func (p *Printer) PrintSkillReport(report analysis.SkillReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Must-have coverage: %d%%\n", report.MatchScore))
	sb.WriteString(ScoreBar(report.MatchScore) + "\n")

	writeGroup := func(label string, skills []types.JDSkill) {
		if len(skills) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills[i].Skill))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
	}

	writeGroup("Matched", report.Exact)
	writeGroup("Adjacent", report.Adjacent)
	writeGroup("Learnable", report.Learnable)
	writeGroup("Different domain", report.DomainChange)

	p.printBox("SKILL REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the ranked profile scores with bars.
func (p *Printer) PrintScores(scores []types.ProfileScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	for i, score := range scores {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, score.ProfileName))
		sb.WriteString(fmt.Sprintf("    %s %d\n", ScoreBar(score.TotalScore), score.TotalScore))
		sb.WriteString(fmt.Sprintf("    %s\n", score.Breakdown))
		if i < len(scores)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROFILE RANKING", sb.String())
}

// PrintVersions outputs a company's saved resume versions.
func (p *Printer) PrintVersions(company *types.Company) {
	if company == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company: %s\n", company.Name))
	if company.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:    %s\n", company.Role))
	}

	if len(company.Versions) == 0 {
		sb.WriteString("\nNo versions generated yet")
	} else {
		sb.WriteString("\nVersions:\n")
		for _, v := range company.Versions {
			sb.WriteString(fmt.Sprintf("  v%d  %s  (%s)\n", v.Version, v.CreatedAt, v.ProfileUsed))
		}
	}

	p.printBox("COMPANY "+strings.ToUpper(company.Slug), strings.TrimSuffix(sb.String(), "\n"))
}
