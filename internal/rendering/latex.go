package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resumint/internal/types"
)

// sectionRenderers maps a section name to its renderer. A renderer returning
// the empty string skips the section silently.
var sectionRenderers = map[string]func(*types.Document) string{
	types.SectionSummary:    renderSummary,
	types.SectionExperience: renderExperience,
	types.SectionProjects:   renderProjects,
	types.SectionEducation:  renderEducation,
	types.SectionSkills:     renderSkills,
}

// Render emits the complete LaTeX source for a document. Deterministic for a
// given document: sections appear strictly in the document's declared order,
// and every user-authored fragment passes through the escaper exactly once.
func Render(doc *types.Document) string {
	parts := []string{
		latexPreamble,
		`\begin{document}`,
		"",
		renderHeader(doc),
	}

	for _, section := range doc.Sections {
		renderer, ok := sectionRenderers[section]
		if !ok {
			continue
		}
		if rendered := renderer(doc); rendered != "" {
			parts = append(parts, "", rendered)
		}
	}

	parts = append(parts, "", `\end{document}`, "")

	return strings.Join(parts, "\n")
}

func renderHeader(doc *types.Document) string {
	var contact []string

	if doc.Phone != "" {
		contact = append(contact, `\small `+EscapeLaTeX(doc.Phone))
	}
	if doc.Email != "" {
		// The mailto target stays unescaped: an escaped address breaks the
		// link, and the visible text next to it goes through the escaper.
		contact = append(contact, fmt.Sprintf(`\href{mailto:%s}{\underline{%s}}`, doc.Email, EscapeLaTeX(doc.Email)))
	}
	for _, link := range []string{doc.LinkedIn, doc.GitHub, doc.Website} {
		if link == "" {
			continue
		}
		url := link
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		contact = append(contact, fmt.Sprintf(`\href{%s}{\underline{%s}}`, EscapeURL(url), EscapeLaTeX(link)))
	}

	return strings.Join([]string{
		`\begin{center}`,
		fmt.Sprintf(`    {\Huge \scshape %s} \\ \vspace{1pt}`, EscapeLaTeX(doc.Name)),
		"    " + strings.Join(contact, " $|$\n    "),
		`\end{center}`,
	}, "\n")
}

func renderSummary(doc *types.Document) string {
	if doc.Summary == "" {
		return ""
	}
	return "\\section{Summary}\n  " + EscapeLaTeX(doc.Summary)
}

func renderExperience(doc *types.Document) string {
	if len(doc.Experience) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\section{Experience}\n  \\resumeSubHeadingListStart\n")
	for _, exp := range doc.Experience {
		fmt.Fprintf(&sb, "    \\resumeSubheading\n      {%s}{%s -- %s}\n      {%s}{%s}\n",
			EscapeLaTeX(exp.Title), EscapeLaTeX(exp.StartDate), EscapeLaTeX(exp.EndDate),
			EscapeLaTeX(exp.Company), EscapeLaTeX(exp.Location))
		sb.WriteString(renderBulletList(exp.Bullets))
	}
	sb.WriteString("  \\resumeSubHeadingListEnd")
	return sb.String()
}

func renderProjects(doc *types.Document) string {
	if len(doc.Projects) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\section{Projects}\n  \\resumeSubHeadingListStart\n")
	for _, proj := range doc.Projects {
		heading := fmt.Sprintf(`\textbf{%s} $|$ \emph{\small %s}`,
			EscapeLaTeX(proj.Name), EscapeLaTeX(proj.Technologies))
		dates := ""
		if proj.StartDate != "" && proj.EndDate != "" {
			dates = fmt.Sprintf("%s -- %s", EscapeLaTeX(proj.StartDate), EscapeLaTeX(proj.EndDate))
		}
		fmt.Fprintf(&sb, "    \\resumeProjectHeading\n      {%s}{%s}\n", heading, dates)
		sb.WriteString(renderBulletList(proj.Bullets))
	}
	sb.WriteString("  \\resumeSubHeadingListEnd")
	return sb.String()
}

func renderEducation(doc *types.Document) string {
	if len(doc.Education) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\section{Education}\n  \\resumeSubHeadingListStart\n")
	for _, edu := range doc.Education {
		fmt.Fprintf(&sb, "    \\resumeSubheading\n      {%s}{%s -- %s}\n      {%s}{%s}\n",
			EscapeLaTeX(edu.Institution), EscapeLaTeX(edu.StartDate), EscapeLaTeX(edu.EndDate),
			EscapeLaTeX(edu.Degree), EscapeLaTeX(edu.Location))
	}
	sb.WriteString("  \\resumeSubHeadingListEnd")
	return sb.String()
}

func renderSkills(doc *types.Document) string {
	if len(doc.Skills) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\\section{Technical Skills}\n")
	sb.WriteString("  \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	sb.WriteString("    \\small{\\item{\n")
	for _, cat := range doc.Skills {
		fmt.Fprintf(&sb, "    \\textbf{%s}{: %s} \\\\\n",
			EscapeLaTeX(cat.Category), EscapeLaTeX(strings.Join(cat.Items, ", ")))
	}
	sb.WriteString("    }}\n")
	sb.WriteString("  \\end{itemize}")
	return sb.String()
}

func renderBulletList(bullets []types.Bullet) string {
	var sb strings.Builder
	sb.WriteString("      \\resumeItemListStart\n")
	for _, bullet := range bullets {
		fmt.Fprintf(&sb, "      \\resumeItem{%s}\n", EscapeLaTeX(bullet.Text))
	}
	sb.WriteString("      \\resumeItemListEnd\n")
	return sb.String()
}
