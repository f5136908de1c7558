// Package fetch retrieves job postings from the web and reduces them to
// plain text suitable for analysis.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 15 * time.Second

// MaxResponseBytes caps how much of a response is read. Job postings are
// small; anything larger is a wrong URL.
const MaxResponseBytes = 2 * 1024 * 1024

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumintBot/1.0)"

// Result holds the processed content from a posting fetch.
type Result struct {
	URL   string
	Title string
	Text  string
}

// Error represents a failure to fetch or process a URL. Hint carries a
// user-facing suggestion, usually to paste the content manually.
type Error struct {
	URL     string
	Message string
	Hint    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Browser enables the headless fallback for pages that render their
	// content with JavaScript.
	Browser bool
}

// DefaultOptions returns sensible defaults for posting fetches.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Browser:   true,
	}
}

// IsURL reports whether value looks like a fetchable http(s) URL.
func IsURL(value string) bool {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return false
	}
	parsed, err := url.Parse(value)
	return err == nil && parsed.Host != ""
}

// Scrape fetches a job posting URL and extracts its text content. When the
// plain HTTP fetch yields too little text and the browser fallback is
// enabled, the page is re-rendered headlessly before extraction.
func Scrape(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if !IsURL(urlStr) {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Hint:    "check the URL and try again",
		}
	}

	html, plain, err := fetchBody(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	if plain {
		text := strings.TrimSpace(html)
		if text == "" {
			return nil, &Error{URL: urlStr, Message: "no text content found"}
		}
		return &Result{URL: urlStr, Text: text}, nil
	}

	title, text, err := extractPosting(html)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	if ShouldUseBrowser(text) && opts.Browser {
		rendered, berr := WithBrowser(ctx, urlStr, opts.Timeout*2)
		if berr == nil {
			if btitle, btext, perr := extractPosting(rendered); perr == nil && len(btext) > len(text) {
				title, text = btitle, btext
			}
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "no text content found",
			Hint:    "the page may require JavaScript, paste the content manually instead",
		}
	}

	return &Result{URL: urlStr, Title: title, Text: text}, nil
}

// fetchBody performs the plain HTTP GET. The second return value reports
// whether the response was plain text rather than HTML.
func fetchBody(ctx context.Context, urlStr string, opts *Options) (string, bool, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", false, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html, text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return "", false, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Hint:    "check your connection or paste the content manually",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", false, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
			Hint:    "check the URL and try again, or paste the content manually",
		}
	}

	contentType := resp.Header.Get("Content-Type")
	plain := strings.Contains(contentType, "text/plain")
	if !plain && !strings.Contains(contentType, "text/html") {
		return "", false, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("unexpected content type %q", contentType),
			Hint:    "URL must return HTML or plain text",
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return "", false, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if len(body) > MaxResponseBytes {
		return "", false, &Error{
			URL:     urlStr,
			Message: "response too large",
			Hint:    "try a direct link to the job posting",
		}
	}

	return string(body), plain, nil
}

// postingSelectors are tried in order when locating the posting body.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// extractPosting parses HTML and returns the page title and the posting
// text. Navigation, scripts, and other chrome are removed first; if no
// posting selector matches, the whole body is used.
func extractPosting(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return title, cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims each line and drops blank runs.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
