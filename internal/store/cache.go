package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resumint/internal/types"
)

// trackingParams are stripped from URLs before hashing so reposted links
// with different campaign tags hit the same cache entry.
var trackingParams = []string{
	"gh_src",
	"source",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_content",
	"utm_term",
}

// CacheEntry is one cached URL: its scraped text and, once computed, the
// analysis of that text.
type CacheEntry struct {
	URL      string             `json:"url"`
	Text     string             `json:"text"`
	Title    string             `json:"title"`
	Analysis *types.JobAnalysis `json:"analysis,omitempty"`
	CachedAt string             `json:"cached_at"`
}

func (s *Store) cachePath() string {
	return filepath.Join(s.root, "url_cache.json")
}

// NormalizeURL strips tracking query parameters. Unparseable URLs are
// returned unchanged.
func NormalizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	for _, param := range trackingParams {
		query.Del(param)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// HashURL returns the cache key for a URL.
func HashURL(raw string) string {
	sum := sha256.Sum256([]byte(NormalizeURL(raw)))
	return hex.EncodeToString(sum[:])[:16]
}

// CachedScrape returns the cached scrape for a URL, or nil.
func (s *Store) CachedScrape(rawURL string) *CacheEntry {
	cache := s.loadCache()
	return cache[HashURL(rawURL)]
}

// CachedAnalysis returns the cached analysis for a URL, or nil if the URL
// was never scraped or never analyzed.
func (s *Store) CachedAnalysis(rawURL string) *types.JobAnalysis {
	entry := s.CachedScrape(rawURL)
	if entry == nil {
		return nil
	}
	return entry.Analysis
}

// CacheScrape records the scraped text for a URL, preserving any analysis
// already attached to the entry.
func (s *Store) CacheScrape(rawURL, text, title string) error {
	cache := s.loadCache()
	key := HashURL(rawURL)
	entry := cache[key]
	if entry == nil {
		entry = &CacheEntry{CachedAt: time.Now().UTC().Format(time.RFC3339)}
		cache[key] = entry
	}
	entry.URL = NormalizeURL(rawURL)
	entry.Text = text
	entry.Title = title
	return s.saveCache(cache)
}

// CacheAnalysis attaches an analysis to a cached scrape. URLs without a
// cached scrape are ignored.
func (s *Store) CacheAnalysis(rawURL string, analysis *types.JobAnalysis) error {
	cache := s.loadCache()
	entry := cache[HashURL(rawURL)]
	if entry == nil {
		return nil
	}
	entry.Analysis = analysis
	return s.saveCache(cache)
}

// loadCache reads the cache file. A missing or corrupt cache is an empty
// cache.
func (s *Store) loadCache() map[string]*CacheEntry {
	cache := make(map[string]*CacheEntry)
	data, err := os.ReadFile(s.cachePath())
	if err != nil {
		return cache
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return make(map[string]*CacheEntry)
	}
	return cache
}

func (s *Store) saveCache(cache map[string]*CacheEntry) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return &Error{Path: s.cachePath(), Message: "failed to marshal cache", Cause: err}
	}
	if err := os.WriteFile(s.cachePath(), data, 0644); err != nil {
		return &Error{Path: s.cachePath(), Message: "failed to write cache", Cause: err}
	}
	return nil
}
