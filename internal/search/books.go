package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Books searches the Google Books volumes API.
type Books struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewBooks creates a Google Books client; without a key it serves demo data.
func NewBooks(key string) *Books {
	return &Books{
		key:     key,
		baseURL: "https://www.googleapis.com/books/v1",
		client:  newHTTPClient(),
	}
}

// SearchBooks queries Google Books volumes.
func (b *Books) SearchBooks(ctx context.Context, query string) ([]Result, error) {
	if b.key == "" {
		log.Printf("books: no API key configured, returning demo books")
		return demoBooks(), nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("key", b.key)
	q.Set("maxResults", "10")

	req, err := http.NewRequestWithContext(ctx, "GET", b.baseURL+"/volumes?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google books api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books api status %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Items []struct {
			ID         string `json:"id"`
			VolumeInfo struct {
				Title         string   `json:"title"`
				PublishedDate string   `json:"publishedDate"`
				Authors       []string `json:"authors"`
				Description   string   `json:"description"`
				PageCount     int      `json:"pageCount"`
				ImageLinks    struct {
					Thumbnail string `json:"thumbnail"`
				} `json:"imageLinks"`
			} `json:"volumeInfo"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]Result, 0, len(result.Items))
	for _, it := range result.Items {
		v := it.VolumeInfo
		author := "Unknown"
		if len(v.Authors) > 0 {
			author = strings.Join(v.Authors, ", ")
		}
		overview := v.Description
		if overview == "" {
			overview = "No description available"
		}
		results = append(results, Result{
			ID:         "book-" + it.ID,
			ExternalID: it.ID,
			Title:      v.Title,
			Year:       yearOf(v.PublishedDate),
			Author:     author,
			Poster:     v.ImageLinks.Thumbnail,
			Overview:   overview,
			Pages:      v.PageCount,
			MediaType:  "book",
		})
	}
	return results, nil
}

func demoBooks() []Result {
	return []Result{
		{
			ID:        "demo-book-1",
			Title:     "1984",
			Year:      "1949",
			Author:    "George Orwell",
			Poster:    "https://covers.openlibrary.org/b/id/7222246-L.jpg",
			Overview:  "A dystopian social science fiction novel and cautionary tale about the dangers of totalitarianism.",
			Pages:     328,
			MediaType: "book",
		},
		{
			ID:        "demo-book-2",
			Title:     "To Kill a Mockingbird",
			Year:      "1960",
			Author:    "Harper Lee",
			Poster:    "https://covers.openlibrary.org/b/id/8228691-L.jpg",
			Overview:  "The unforgettable novel of a childhood in a sleepy Southern town and the crisis of conscience that rocked it.",
			Pages:     324,
			MediaType: "book",
		},
	}
}
