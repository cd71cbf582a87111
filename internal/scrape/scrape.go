// Package scrape pulls job-posting text out of arbitrary web pages. Pages
// carry no fixed schema, so location is a cascade of CSS selectors ordered
// from job-specific containers down to generic page containers, with the
// whole body as the last resort.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobpilot-backend/internal/shared/telemetry"
)

const (
	fetchTimeout = 10 * time.Second
	maxRedirects = 5

	// A selector match must clear this length to be accepted.
	minSelectorTextLen = 200
	// Anything shorter than this after cleanup is not a real posting.
	minContentLen = 100
	// Truncation cap, applied only after the minimum-length check.
	maxContentLen = 4000

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Sentinel failures. Every failure path converges to one of these; the
// caller decides how to surface them.
var (
	ErrFetchFailed     = errors.New("job page fetch failed")
	ErrContentTooShort = errors.New("job page content too short")
)

// contentSelectors is tried in order; earlier entries are more specific.
var contentSelectors = []string{
	".job-description",
	".job-details",
	".job-content",
	".description",
	".posting-description",
	".job-posting",
	`[data-testid="job-description"]`,
	".job-summary",
	"main",
	"article",
	".content",
}

const strippedElements = "script, style, nav, header, footer, aside, .advertisement, .ads, .social-share"

// Content is the cleaned posting text plus the selector that located it.
// An empty SourceSelector means the full-body fallback was used.
type Content struct {
	Text           string
	SourceSelector string
}

// Extractor fetches and cleans job-posting pages.
type Extractor struct {
	HTTPClient *http.Client
	UserAgent  string
}

// NewExtractor builds an Extractor with a bounded timeout and redirect cap.
func NewExtractor() *Extractor {
	return &Extractor{
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		UserAgent: browserUserAgent,
	}
}

// Extract fetches url and returns the cleaned posting text. One attempt,
// no retries: the posting page is a one-shot external dependency, and a
// bounded failure beats an unbounded wait.
func (e *Extractor) Extract(ctx context.Context, url string) (Content, error) {
	doc, err := e.fetch(ctx, url)
	if err != nil {
		telemetry.Info("scrape.fetch_failed", map[string]any{"url": url, "error": err.Error()})
		return Content{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	doc.Find(strippedElements).Remove()

	text, selector := selectContent(doc)
	cleaned := cleanText(text)
	if len(cleaned) < minContentLen {
		return Content{}, ErrContentTooShort
	}
	return Content{Text: truncate(cleaned, maxContentLen), SourceSelector: selector}, nil
}

func (e *Extractor) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// selectContent walks the selector cascade and takes the first match whose
// text clears the minimum length. Order encodes specificity preference.
func selectContent(doc *goquery.Document) (string, string) {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if text := sel.Text(); len(text) > minSelectorTextLen {
			return text, selector
		}
	}
	return doc.Find("body").Text(), ""
}

// cleanText collapses whitespace and drops non-printable control characters.
func cleanText(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, collapsed)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
