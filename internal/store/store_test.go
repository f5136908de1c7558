package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	require.NoError(t, s.Init())
	return s
}

func testMaster() *types.MasterResume {
	return &types.MasterResume{
		Name:  "Jordan Smith",
		Email: "jordan@example.com",
		Phone: "555-0100",
		Summary: []types.SummaryOption{
			{ID: "default", Text: "Engineer who ships."},
		},
		Experience: []types.Experience{
			{
				ID:        "acme",
				Company:   "Acme Corp",
				Title:     "Senior Engineer",
				StartDate: "2020",
				EndDate:   "Present",
				Bullets: []types.Bullet{
					{ID: "acme-1", Text: "Built the billing platform", Tags: []string{"go", "backend"}},
				},
			},
		},
		Projects: []types.Project{
			{
				ID:           "sidecar",
				Name:         "Sidecar",
				Technologies: "Go, Postgres",
				Bullets: []types.Bullet{
					{ID: "sidecar-1", Text: "Wrote a cache sidecar", Tags: []string{"go"}},
				},
			},
		},
		Education: []types.Education{
			{ID: "state-u", Institution: "State University", Degree: "BS Computer Science"},
		},
		Skills: []types.SkillCategory{
			{ID: "languages", Category: "Languages", Items: []string{"Go", "Python"}},
		},
	}
}

func testProfile(name string) *types.Profile {
	return &types.Profile{
		Name:     name,
		Summary:  "default",
		Sections: []string{"summary", "experience", "skills"},
		Experience: []types.EntryRef{
			{ID: "acme", Bullets: []string{"acme-1"}},
		},
		Projects:  []types.EntryRef{},
		Education: []string{"state-u"},
		Skills:    []string{"languages"},
	}
}

func TestMasterRoundTrip(t *testing.T) {
	s := testStore(t)
	master := testMaster()

	require.NoError(t, s.SaveMaster(master))

	loaded, err := s.LoadMaster()
	require.NoError(t, err)
	assert.Equal(t, master, loaded)
}

func TestProfileRoundTripAndList(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SaveProfile(testProfile("backend")))
	require.NoError(t, s.SaveProfile(testProfile("frontend")))

	loaded, err := s.LoadProfile("backend")
	require.NoError(t, err)
	assert.Equal(t, "backend", loaded.Name)

	profiles, err := s.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "backend", profiles[0].Name)
	assert.Equal(t, "frontend", profiles[1].Name)
}

func TestLoadProfileNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.LoadProfile("missing")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "profile", notFound.Kind)
}

func TestLoadRejectsInvalidRecord(t *testing.T) {
	s := testStore(t)
	master := testMaster()
	master.Name = ""

	err := s.SaveMaster(master)
	require.Error(t, err)

	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Contains(t, storeErr.Message, "schema")
}

func TestCompanyLifecycle(t *testing.T) {
	s := testStore(t)
	company := &types.Company{
		Slug: "acme",
		Name: "Acme Corp",
		Role: "Backend Engineer",
		JD:   "Build services in Go.",
	}

	require.NoError(t, s.SaveCompany(company))
	assert.NotEmpty(t, company.CreatedAt)
	assert.NotEmpty(t, company.UpdatedAt)

	loaded, err := s.LoadCompany("acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", loaded.Name)
	assert.Empty(t, loaded.Versions)

	companies, err := s.ListCompanies()
	require.NoError(t, err)
	assert.Len(t, companies, 1)

	require.NoError(t, s.RemoveCompany("acme"))
	_, err = s.LoadCompany("acme")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCompanyReachoutRoundTrip(t *testing.T) {
	s := testStore(t)
	company := &types.Company{
		Slug: "acme",
		Name: "Acme Corp",
		Role: "Backend Engineer",
		JD:   "Build services in Go.",
		Reachout: &types.Reachout{
			ConnectionNote:  "Saw your post on schema migrations.",
			FollowUpMessage: "Thanks for connecting, I work on similar systems.",
		},
	}

	require.NoError(t, s.SaveCompany(company))

	loaded, err := s.LoadCompany("acme")
	require.NoError(t, err)
	require.NotNil(t, loaded.Reachout)
	assert.Equal(t, company.Reachout, loaded.Reachout)
}

func TestNewVersionIncrements(t *testing.T) {
	s := testStore(t)
	company := &types.Company{Slug: "acme", Name: "Acme Corp"}

	v1 := s.NewVersion(company, "backend", "resume_v1.pdf")
	v2 := s.NewVersion(company, "backend", "resume_v2.pdf")

	assert.Equal(t, 1, v1.Version)
	assert.Equal(t, 2, v2.Version)
	assert.NotEqual(t, v1.ID, v2.ID)
	assert.Len(t, company.Versions, 2)

	require.NoError(t, s.SaveCompany(company))
	loaded, err := s.LoadCompany("acme")
	require.NoError(t, err)
	assert.Len(t, loaded.Versions, 2)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-corp", Slugify("Acme Corp"))
	assert.Equal(t, "acme-corp", Slugify("  Acme   Corp!  "))
	assert.Equal(t, "big-co-2", Slugify("Big Co. 2"))
	assert.Equal(t, "", Slugify("!!!"))
}
