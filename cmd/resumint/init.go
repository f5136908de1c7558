package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumint/internal/config"
	"github.com/jonathan/resumint/internal/store"
	"github.com/jonathan/resumint/internal/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory with sample resume data",
	Long:  "Create the data directory layout with a sample master resume, two starter profiles, a writing-voice file, and a default config file. Existing files are left untouched.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func sampleMaster() *types.MasterResume {
	return &types.MasterResume{
		Name:     "Your Name",
		Email:    "you@example.com",
		Phone:    "+1-555-0100",
		LinkedIn: "linkedin.com/in/yourname",
		GitHub:   "github.com/yourname",
		Summary: []types.SummaryOption{
			{
				ID:   "summary-frontend",
				Text: "Frontend engineer with X years of experience building performant, accessible web applications with React, TypeScript, and modern tooling.",
			},
			{
				ID:   "summary-fullstack",
				Text: "Full-stack engineer with X years of experience across React frontends and Node.js backends, with a focus on developer experience and system design.",
			},
		},
		Experience: []types.Experience{
			{
				ID:        "exp-company-a",
				Company:   "Company A",
				Title:     "Senior Frontend Engineer",
				Location:  "San Francisco, CA",
				StartDate: "Jan 2022",
				EndDate:   "Present",
				Bullets: []types.Bullet{
					{
						ID:   "exp-a-1",
						Text: "Led migration of legacy jQuery codebase to React 18, reducing bundle size by 40% and improving page load times by 2s",
						Tags: []string{"react", "performance", "migration", "leadership"},
					},
					{
						ID:   "exp-a-2",
						Text: "Built component library with 50+ accessible components using TypeScript and Storybook, adopted by 3 product teams",
						Tags: []string{"react", "typescript", "design-system", "accessibility"},
					},
					{
						ID:   "exp-a-3",
						Text: "Implemented real-time collaboration features using WebSockets and CRDT, serving 10K concurrent users",
						Tags: []string{"websockets", "real-time", "architecture"},
					},
				},
			},
			{
				ID:        "exp-company-b",
				Company:   "Company B",
				Title:     "Frontend Engineer",
				Location:  "Remote",
				StartDate: "Jun 2020",
				EndDate:   "Dec 2021",
				Bullets: []types.Bullet{
					{
						ID:   "exp-b-1",
						Text: "Developed customer-facing dashboard processing $2M daily transactions with React and GraphQL",
						Tags: []string{"react", "graphql", "dashboard", "fintech"},
					},
					{
						ID:   "exp-b-2",
						Text: "Reduced API response times by 60% through implementing Redis caching layer and query optimization",
						Tags: []string{"backend", "performance", "redis", "optimization"},
					},
				},
			},
		},
		Projects: []types.Project{
			{
				ID:           "proj-oss",
				Name:         "Open Source Project",
				Technologies: "React, TypeScript, Vite",
				URL:          "github.com/you/project",
				Bullets: []types.Bullet{
					{
						ID:   "proj-oss-1",
						Text: "Created a popular open-source React component library with 500+ GitHub stars",
						Tags: []string{"react", "open-source", "typescript"},
					},
				},
			},
		},
		Education: []types.Education{
			{
				ID:          "edu-university",
				Institution: "University Name",
				Degree:      "B.S. Computer Science",
				Location:    "City, State",
				StartDate:   "Aug 2016",
				EndDate:     "May 2020",
			},
		},
		Skills: []types.SkillCategory{
			{ID: "skills-languages", Category: "Languages", Items: []string{"TypeScript", "JavaScript", "Python", "HTML/CSS", "SQL"}},
			{ID: "skills-frameworks", Category: "Frameworks", Items: []string{"React", "Next.js", "Node.js", "Express", "Tailwind CSS"}},
			{ID: "skills-tools", Category: "Tools", Items: []string{"Git", "Docker", "AWS", "PostgreSQL", "Redis", "Figma"}},
		},
	}
}

func sampleProfiles() []*types.Profile {
	return []*types.Profile{
		{
			Name:        "frontend-heavy",
			Description: "Emphasizes React, UI/UX, component systems, frontend architecture",
			Summary:     "summary-frontend",
			Sections:    []string{"education", "experience", "projects", "skills"},
			Experience: []types.EntryRef{
				{ID: "exp-company-a", Bullets: []string{"exp-a-1", "exp-a-2", "exp-a-3"}},
				{ID: "exp-company-b", Bullets: []string{"exp-b-1"}},
			},
			Projects:  []types.EntryRef{{ID: "proj-oss", Bullets: []string{"proj-oss-1"}}},
			Education: []string{"edu-university"},
			Skills:    []string{"skills-languages", "skills-frameworks", "skills-tools"},
		},
		{
			Name:        "fullstack-leaning",
			Description: "Emphasizes API work, databases, backend alongside frontend",
			Summary:     "summary-fullstack",
			Sections:    []string{"education", "experience", "projects", "skills"},
			Experience: []types.EntryRef{
				{ID: "exp-company-a", Bullets: []string{"exp-a-1", "exp-a-3"}},
				{ID: "exp-company-b", Bullets: []string{"exp-b-1", "exp-b-2"}},
			},
			Projects:  []types.EntryRef{{ID: "proj-oss", Bullets: []string{"proj-oss-1"}}},
			Education: []string{"edu-university"},
			Skills:    []string{"skills-languages", "skills-frameworks", "skills-tools"},
		},
	}
}

func runInit(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.store.Init(); err != nil {
		return err
	}
	a.printer.Printf("Created data directories under %s", a.store.Root())

	if _, err := a.store.LoadMaster(); err == nil {
		a.printer.Printf("master.json already exists, skipping")
	} else {
		if err := a.store.SaveMaster(sampleMaster()); err != nil {
			return err
		}
		a.printer.Printf("Created sample master.json")
	}

	for _, profile := range sampleProfiles() {
		if _, err := a.store.LoadProfile(profile.Name); err == nil {
			a.printer.Printf("%s profile already exists, skipping", profile.Name)
			continue
		}
		if err := a.store.SaveProfile(profile); err != nil {
			return err
		}
		a.printer.Printf("Created %s profile", profile.Name)
	}

	if a.store.HasVoice() {
		a.printer.Printf("voice.json already exists, skipping")
	} else {
		if err := a.store.SaveVoice(store.DefaultVoice()); err != nil {
			return err
		}
		a.printer.Printf("Created voice.json")
	}

	configPath := filepath.Join(a.store.Root(), config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		a.printer.Printf("%s already exists, skipping", config.FileName)
	} else {
		cfg := config.Default()
		cfg.DataDir = a.store.Root()
		if err := cfg.Save(); err != nil {
			return err
		}
		a.printer.Printf("Created %s", config.FileName)
	}

	a.printer.Printf("")
	a.printer.Printf("Initialization complete. Next steps:")
	a.printer.Printf("  1. Edit %s/master.json with your real resume data", a.store.Root())
	a.printer.Printf("  2. Edit %s/profiles/ to curate what each profile includes", a.store.Root())
	a.printer.Printf("  3. Set %s", config.EnvAPIKey)
	a.printer.Printf("  4. Run: resumint quick")

	return nil
}
