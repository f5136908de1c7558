// Package store persists records as JSON files under a data directory:
// the master resume, named profiles, saved companies, and a URL cache.
// Records are validated against their schemas on load and save.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resumint/internal/schemas"
	"github.com/jonathan/resumint/internal/types"
)

// Error represents a storage failure.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFoundError reports a record that does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Store is a file-backed record store rooted at a data directory.
type Store struct {
	root string
}

// DefaultRoot returns the default data directory, ~/.resumint.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".resumint"), nil
}

// New creates a store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the data directory.
func (s *Store) Root() string {
	return s.root
}

// Init creates the data directory layout. Existing directories are left
// alone.
func (s *Store) Init() error {
	for _, dir := range []string{s.root, s.profilesDir(), s.companiesDir(), s.OutputDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Path: dir, Message: "failed to create directory", Cause: err}
		}
	}
	return nil
}

// Exists reports whether the data directory has been initialized.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// OutputDir returns the directory generated artifacts are written to.
func (s *Store) OutputDir() string {
	return filepath.Join(s.root, "output")
}

func (s *Store) masterPath() string {
	return filepath.Join(s.root, "master.json")
}

func (s *Store) profilesDir() string {
	return filepath.Join(s.root, "profiles")
}

func (s *Store) companiesDir() string {
	return filepath.Join(s.root, "companies")
}

// LoadMaster reads and validates the master resume.
func (s *Store) LoadMaster() (*types.MasterResume, error) {
	var master types.MasterResume
	if err := s.loadRecord(s.masterPath(), schemas.MasterResume, &master); err != nil {
		return nil, err
	}
	return &master, nil
}

// SaveMaster validates and writes the master resume.
func (s *Store) SaveMaster(master *types.MasterResume) error {
	return s.saveRecord(s.masterPath(), schemas.MasterResume, master)
}

// LoadProfile reads and validates a named profile.
func (s *Store) LoadProfile(name string) (*types.Profile, error) {
	path := filepath.Join(s.profilesDir(), name+".json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Kind: "profile", Name: name}
	}
	var profile types.Profile
	if err := s.loadRecord(path, schemas.Profile, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile validates and writes a profile under its name.
func (s *Store) SaveProfile(profile *types.Profile) error {
	path := filepath.Join(s.profilesDir(), profile.Name+".json")
	return s.saveRecord(path, schemas.Profile, profile)
}

// ListProfiles loads every profile in the data directory, sorted by name.
func (s *Store) ListProfiles() ([]*types.Profile, error) {
	entries, err := os.ReadDir(s.profilesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Path: s.profilesDir(), Message: "failed to list profiles", Cause: err}
	}

	var profiles []*types.Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		profile, err := s.LoadProfile(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

// LoadCompany reads and validates a saved company by slug.
func (s *Store) LoadCompany(slug string) (*types.Company, error) {
	path := filepath.Join(s.companiesDir(), slug+".json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Kind: "company", Name: slug}
	}
	var company types.Company
	if err := s.loadRecord(path, schemas.Company, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// SaveCompany validates and writes a company record, updating its
// timestamp.
func (s *Store) SaveCompany(company *types.Company) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if company.CreatedAt == "" {
		company.CreatedAt = now
	}
	if company.Versions == nil {
		company.Versions = []types.ResumeVersion{}
	}
	company.UpdatedAt = now
	path := filepath.Join(s.companiesDir(), company.Slug+".json")
	return s.saveRecord(path, schemas.Company, company)
}

// ListCompanies loads every saved company, sorted by slug.
func (s *Store) ListCompanies() ([]*types.Company, error) {
	entries, err := os.ReadDir(s.companiesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Path: s.companiesDir(), Message: "failed to list companies", Cause: err}
	}

	var companies []*types.Company
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".json")
		company, err := s.LoadCompany(slug)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Slug < companies[j].Slug })
	return companies, nil
}

// RemoveCompany deletes a saved company.
func (s *Store) RemoveCompany(slug string) error {
	path := filepath.Join(s.companiesDir(), slug+".json")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Kind: "company", Name: slug}
		}
		return &Error{Path: path, Message: "failed to remove company", Cause: err}
	}
	return nil
}

// NewVersion appends a resume version to a company and returns it. The
// version number is one past the current highest.
func (s *Store) NewVersion(company *types.Company, profileUsed, outputFile string) types.ResumeVersion {
	next := 1
	for _, v := range company.Versions {
		if v.Version >= next {
			next = v.Version + 1
		}
	}
	version := types.ResumeVersion{
		ID:          uuid.NewString(),
		Version:     next,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		ProfileUsed: profileUsed,
		OutputFile:  outputFile,
	}
	company.Versions = append(company.Versions, version)
	return version
}

// Slugify converts a company name to a filesystem-safe slug.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// loadRecord reads a JSON file, validates it against the named schema, and
// unmarshals it into out.
func (s *Store) loadRecord(path, schema string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Path: path, Message: "failed to read record", Cause: err}
	}
	if err := schemas.Validate(schema, data); err != nil {
		return &Error{Path: path, Message: "record does not match schema", Cause: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Path: path, Message: "failed to parse record", Cause: err}
	}
	return nil
}

// saveRecord marshals a record, validates it against the named schema, and
// writes it atomically via a temp file.
func (s *Store) saveRecord(path, schema string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &Error{Path: path, Message: "failed to marshal record", Cause: err}
	}
	if err := schemas.Validate(schema, data); err != nil {
		return &Error{Path: path, Message: "record does not match schema", Cause: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &Error{Path: path, Message: "failed to create directory", Cause: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &Error{Path: path, Message: "failed to write record", Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &Error{Path: path, Message: "failed to replace record", Cause: err}
	}
	return nil
}
