// Package issue fetches per-issue metadata from a templated tracker URL and
// renders the Markdown lines of the notification's issue section.
package issue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mwaldren/relnotify/internal/security"
)

// maxBodySize caps how much of an issue response body is read.
const maxBodySize = 1 << 20

// Fetcher resolves issue identifiers against a tracker's REST API.
type Fetcher struct {
	summaryPattern string
	linkPattern    string
	userAgent      string
	client         *http.Client
}

// NewFetcher creates a Fetcher. summaryPattern and linkPattern are URL
// templates with a ${id} placeholder; linkPattern may be empty, in which case
// lines carry the plain identifier instead of a Markdown link.
func NewFetcher(summaryPattern, linkPattern, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		summaryPattern: summaryPattern,
		linkPattern:    linkPattern,
		userAgent:      userAgent,
		client:         &http.Client{Timeout: timeout},
	}
}

// FetchSummaries resolves every identifier concurrently and returns one entry
// per identifier, positionally aligned with ids regardless of completion
// order. Each entry is a rendered bullet line; an empty entry means the
// issue's response carried no usable summary and produces no output.
//
// Fetches are fully isolated: a failure for one identifier degrades to an
// error line for that identifier and never affects the others.
func (f *Fetcher) FetchSummaries(ctx context.Context, ids []string) []string {
	lines := make([]string, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			lines[i] = f.fetchOne(ctx, id)
		}(i, id)
	}
	wg.Wait()

	return lines
}

// fetchOne resolves a single identifier to its bullet line. Transport and
// HTTP failures render as categorized error lines; a 2xx response without a
// summary field renders as no line at all.
func (f *Fetcher) fetchOne(ctx context.Context, id string) string {
	fetchURL, auth := security.PrepareAuth(BuildLink(f.summaryPattern, id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return f.errorLine(id, "Network Error")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// Transport errors echo the request URL, credentials included.
		// Only the category is surfaced.
		return f.errorLine(id, "Network Error")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return f.errorLine(id, statusLabel(resp))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return f.errorLine(id, "Network Error")
	}

	var is Issue
	if err := json.Unmarshal(body, &is); err != nil {
		return ""
	}
	if is.Fields.Summary == "" {
		// A success response without a summary yields no line.
		return ""
	}

	return f.successLine(id, is)
}

// label renders the identifier as configured: plain text, or a Markdown link
// when a link template was supplied.
func (f *Fetcher) label(id string) string {
	if f.linkPattern == "" {
		return id
	}
	return fmt.Sprintf("[%s](%s)", id, BuildLink(f.linkPattern, id))
}

func (f *Fetcher) errorLine(id, category string) string {
	return fmt.Sprintf("* **%s**: Failed to fetch (%s)", f.label(id), category)
}

func (f *Fetcher) successLine(id string, is Issue) string {
	line := fmt.Sprintf("* **%s**: %s", f.label(id), is.Fields.Summary)

	var details []string
	if is.Fields.Status != nil && is.Fields.Status.Name != "" {
		details = append(details, is.Fields.Status.Name)
	}
	if is.Fields.IssueType != nil && is.Fields.IssueType.Name != "" {
		details = append(details, is.Fields.IssueType.Name)
	}
	if len(details) > 0 {
		line += " (" + strings.Join(details, " · ") + ")"
	}

	return line
}

// statusLabel formats a non-2xx response as "<code> <phrase>", falling back
// to "Unknown Error" when the response carries no status phrase.
func statusLabel(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
	if phrase == "" {
		phrase = "Unknown Error"
	}
	return code + " " + phrase
}
