package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/types"
)

func testDocument() *types.Document {
	return &types.Document{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		GitHub:   "github.com/janedoe",
		Summary:  "Frontend engineer focused on performance.",
		Sections: []string{"summary", "experience", "projects", "education", "skills"},
		Experience: []types.Experience{
			{
				ID: "exp1", Company: "Acme & Co", Title: "Engineer",
				Location: "Remote", StartDate: "2020", EndDate: "Present",
				Bullets: []types.Bullet{
					{ID: "b1", Text: "Cut load time by 50%"},
				},
			},
		},
		Projects: []types.Project{
			{
				ID: "proj1", Name: "Dashboard", Technologies: "React, D3",
				StartDate: "2021", EndDate: "2022",
				Bullets: []types.Bullet{{ID: "pb1", Text: "Shipped v1"}},
			},
		},
		Education: []types.Education{
			{ID: "edu1", Institution: "State University", Degree: "BSc", Location: "Springfield", StartDate: "2012", EndDate: "2016"},
		},
		Skills: []types.SkillCategory{
			{ID: "sk1", Category: "Languages", Items: []string{"TypeScript", "Go"}},
		},
	}
}

func TestRender_Deterministic(t *testing.T) {
	doc := testDocument()
	first := Render(doc)
	second := Render(doc)
	assert.Equal(t, first, second)
}

func TestRender_SectionsInDeclaredOrder(t *testing.T) {
	doc := testDocument()
	doc.Sections = []string{"skills", "experience"}
	out := Render(doc)

	skillsIdx := strings.Index(out, `\section{Technical Skills}`)
	expIdx := strings.Index(out, `\section{Experience}`)
	require.GreaterOrEqual(t, skillsIdx, 0)
	require.GreaterOrEqual(t, expIdx, 0)
	assert.Less(t, skillsIdx, expIdx)
	assert.NotContains(t, out, `\section{Summary}`)
	assert.NotContains(t, out, `\section{Projects}`)
}

func TestRender_EmptySummarySkippedSilently(t *testing.T) {
	doc := testDocument()
	doc.Summary = ""
	out := Render(doc)
	assert.NotContains(t, out, `\section{Summary}`)
}

func TestRender_EmptyEntryListsSkipped(t *testing.T) {
	doc := testDocument()
	doc.Projects = nil
	doc.Education = nil
	out := Render(doc)
	assert.NotContains(t, out, `\section{Projects}`)
	assert.NotContains(t, out, `\section{Education}`)
}

func TestRender_UnknownSectionIgnored(t *testing.T) {
	doc := testDocument()
	doc.Sections = append(doc.Sections, "references")
	out := Render(doc)
	assert.NotContains(t, out, "references")
}

func TestRender_EscapesUserContent(t *testing.T) {
	doc := testDocument()
	out := Render(doc)
	assert.Contains(t, out, `Acme \& Co`)
	assert.Contains(t, out, `Cut load time by 50\%`)
}

func TestRender_ContactLinksGetHTTPSPrefix(t *testing.T) {
	out := Render(testDocument())
	assert.Contains(t, out, `\href{https://github.com/janedoe}`)
}

func TestRender_DocumentStructure(t *testing.T) {
	out := Render(testDocument())
	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\begin{document}`)
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), `\end{document}`))
	// One subheading per experience entry, one item per bullet.
	assert.Equal(t, 2, strings.Count(out, `\resumeSubheading`)-strings.Count(out, `\newcommand{\resumeSubheading}`))
}
