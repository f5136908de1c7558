package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumint/internal/types"
)

func TestNormalizeURLStripsTrackingParams(t *testing.T) {
	raw := "https://jobs.example.com/posting/123?utm_source=linkedin&utm_campaign=q3&gh_src=abc&page=2"
	normalized := NormalizeURL(raw)

	assert.NotContains(t, normalized, "utm_source")
	assert.NotContains(t, normalized, "utm_campaign")
	assert.NotContains(t, normalized, "gh_src")
	assert.Contains(t, normalized, "page=2")
}

func TestHashURLIgnoresTracking(t *testing.T) {
	plain := "https://jobs.example.com/posting/123"
	tagged := "https://jobs.example.com/posting/123?utm_source=linkedin"
	other := "https://jobs.example.com/posting/456"

	assert.Equal(t, HashURL(plain), HashURL(tagged))
	assert.NotEqual(t, HashURL(plain), HashURL(other))
	assert.Len(t, HashURL(plain), 16)
}

func TestCacheScrapeRoundTrip(t *testing.T) {
	s := testStore(t)
	url := "https://jobs.example.com/posting/123"

	assert.Nil(t, s.CachedScrape(url))

	require.NoError(t, s.CacheScrape(url, "posting text", "Backend Engineer"))

	entry := s.CachedScrape(url)
	require.NotNil(t, entry)
	assert.Equal(t, "posting text", entry.Text)
	assert.Equal(t, "Backend Engineer", entry.Title)
	assert.NotEmpty(t, entry.CachedAt)
}

func TestCacheAnalysisRequiresScrape(t *testing.T) {
	s := testStore(t)
	url := "https://jobs.example.com/posting/123"
	analysis := &types.JobAnalysis{Title: "Backend Engineer", Company: "Acme"}

	// No scrape cached yet, so the analysis is dropped.
	require.NoError(t, s.CacheAnalysis(url, analysis))
	assert.Nil(t, s.CachedAnalysis(url))

	require.NoError(t, s.CacheScrape(url, "posting text", ""))
	require.NoError(t, s.CacheAnalysis(url, analysis))

	cached := s.CachedAnalysis(url)
	require.NotNil(t, cached)
	assert.Equal(t, "Backend Engineer", cached.Title)
}

func TestCacheScrapeKeepsAnalysis(t *testing.T) {
	s := testStore(t)
	url := "https://jobs.example.com/posting/123"

	require.NoError(t, s.CacheScrape(url, "first text", ""))
	require.NoError(t, s.CacheAnalysis(url, &types.JobAnalysis{Title: "Engineer"}))
	require.NoError(t, s.CacheScrape(url, "updated text", "New Title"))

	entry := s.CachedScrape(url)
	require.NotNil(t, entry)
	assert.Equal(t, "updated text", entry.Text)
	require.NotNil(t, entry.Analysis)
	assert.Equal(t, "Engineer", entry.Analysis.Title)
}
