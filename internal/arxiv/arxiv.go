// Package arxiv fetches recent papers from the arXiv Atom query API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Paper is one feed entry, cleaned up: version suffix stripped from the id,
// whitespace collapsed in title and abstract, PDF link resolved.
type Paper struct {
	PaperID     string
	Title       string
	Authors     []string
	Abstract    string
	Categories  []string
	PublishedAt time.Time
	PDFLink     string
}

// Client queries the arXiv export API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates an arXiv client.
func New() *Client {
	return &Client{
		baseURL: "http://export.arxiv.org/api/query",
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
	Links []struct {
		Href string `xml:"href,attr"`
		Type string `xml:"type,attr"`
	} `xml:"link"`
}

// Fetch returns recent papers in the given categories, newest first,
// filtered to the last daysBack days. The category restriction goes in the
// query; the date window is applied after parsing, which keeps the query
// simple enough to stay under arXiv's rate limits.
func (c *Client) Fetch(ctx context.Context, categories []string, maxResults, daysBack int) ([]Paper, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 20
	}
	if daysBack <= 0 {
		daysBack = 7
	}

	terms := make([]string, len(categories))
	for i, cat := range categories {
		terms[i] = "cat:" + cat
	}

	q := url.Values{}
	q.Set("search_query", "("+strings.Join(terms, " OR ")+")")
	q.Set("start", "0")
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("sortBy", "submittedDate")
	q.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv api status %d: %s", resp.StatusCode, body)
	}

	papers, err := parseFeed(body)
	if err != nil {
		return nil, err
	}

	// Post-fetch date window.
	cutoff := time.Now().AddDate(0, 0, -daysBack)
	filtered := papers[:0]
	for _, p := range papers {
		if !p.PublishedAt.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func parseFeed(data []byte) ([]Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		published, err := time.Parse(time.RFC3339, e.Published)
		if err != nil {
			return nil, fmt.Errorf("parse published date %q: %w", e.Published, err)
		}

		p := Paper{
			PaperID:     paperID(e.ID),
			Title:       collapseWhitespace(e.Title),
			Abstract:    collapseWhitespace(e.Summary),
			PublishedAt: published,
		}
		for _, a := range e.Authors {
			p.Authors = append(p.Authors, a.Name)
		}
		for _, c := range e.Categories {
			p.Categories = append(p.Categories, c.Term)
		}
		for _, l := range e.Links {
			if l.Type == "application/pdf" {
				p.PDFLink = l.Href
				break
			}
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// paperID extracts the bare id from an entry id URL like
// http://arxiv.org/abs/2406.01234v2 -> 2406.01234 (version suffix dropped).
func paperID(entryID string) string {
	seg := entryID
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.Index(seg, "v"); i > 0 {
		seg = seg[:i]
	}
	return seg
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
