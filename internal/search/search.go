// Package search wraps the third-party media search APIs (TMDB, Google
// Books, AniList) and reshapes their responses into one common item format
// the library UI can consume regardless of provider.
package search

import (
	"net/http"
	"time"
)

// Result is the provider-independent search item. Provider-specific extras
// (author, pages, episodes, chapters) are omitted when empty.
type Result struct {
	ID         string   `json:"id"`
	ExternalID string   `json:"externalId,omitempty"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Poster     string   `json:"poster,omitempty"`
	Overview   string   `json:"overview"`
	Rating     *float64 `json:"rating"`
	MediaType  string   `json:"mediaType"`
	Author     string   `json:"author,omitempty"`
	Pages      int      `json:"pages,omitempty"`
	Episodes   int      `json:"episodes,omitempty"`
	Chapters   int      `json:"chapters,omitempty"`
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
