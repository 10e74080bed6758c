package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

const tmdbImageBase = "https://image.tmdb.org/t/p/w500"

// TMDB searches The Movie Database for movies and TV shows.
type TMDB struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewTMDB creates a TMDB client. An empty key is allowed: searches then
// return canned demo results so the app works out of the box.
func NewTMDB(key string) *TMDB {
	return &TMDB{
		key:     key,
		baseURL: "https://api.themoviedb.org/3",
		client:  newHTTPClient(),
	}
}

type tmdbItem struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
	PosterPath   string   `json:"poster_path"`
	Overview     string   `json:"overview"`
	VoteAverage  *float64 `json:"vote_average"`
}

// SearchMovies queries TMDB movie search.
func (t *TMDB) SearchMovies(ctx context.Context, query string) ([]Result, error) {
	if t.key == "" {
		log.Printf("tmdb: no API key configured, returning demo movies")
		return demoMovies(), nil
	}
	items, err := t.search(ctx, "/search/movie", query)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(items))
	for _, it := range items {
		results = append(results, Result{
			ID:         fmt.Sprintf("tmdb-movie-%d", it.ID),
			ExternalID: fmt.Sprintf("%d", it.ID),
			Title:      it.Title,
			Year:       yearOf(it.ReleaseDate),
			Poster:     posterURL(it.PosterPath),
			Overview:   it.Overview,
			Rating:     it.VoteAverage,
			MediaType:  "movie",
		})
	}
	return results, nil
}

// SearchTV queries TMDB TV search.
func (t *TMDB) SearchTV(ctx context.Context, query string) ([]Result, error) {
	if t.key == "" {
		log.Printf("tmdb: no API key configured, returning demo shows")
		return demoTV(), nil
	}
	items, err := t.search(ctx, "/search/tv", query)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(items))
	for _, it := range items {
		results = append(results, Result{
			ID:         fmt.Sprintf("tmdb-tv-%d", it.ID),
			ExternalID: fmt.Sprintf("%d", it.ID),
			Title:      it.Name,
			Year:       yearOf(it.FirstAirDate),
			Poster:     posterURL(it.PosterPath),
			Overview:   it.Overview,
			Rating:     it.VoteAverage,
			MediaType:  "tv",
		})
	}
	return results, nil
}

func (t *TMDB) search(ctx context.Context, path, query string) ([]tmdbItem, error) {
	q := url.Values{}
	q.Set("api_key", t.key)
	q.Set("query", query)

	req, err := http.NewRequestWithContext(ctx, "GET", t.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb api status %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Results []tmdbItem `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result.Results, nil
}

func yearOf(date string) string {
	if len(date) < 4 {
		return "N/A"
	}
	return date[:4]
}

func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbImageBase + path
}

func demoMovies() []Result {
	r1, r2 := 8.7, 9.0
	return []Result{
		{
			ID:        "demo-movie-1",
			Title:     "The Shawshank Redemption",
			Year:      "1994",
			Poster:    tmdbImageBase + "/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
			Overview:  "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Rating:    &r1,
			MediaType: "movie",
		},
		{
			ID:        "demo-movie-2",
			Title:     "The Dark Knight",
			Year:      "2008",
			Poster:    tmdbImageBase + "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
			Overview:  "When the menace known as the Joker wreaks havoc on Gotham, Batman must accept one of the greatest psychological and physical tests.",
			Rating:    &r2,
			MediaType: "movie",
		},
	}
}

func demoTV() []Result {
	r1, r2 := 9.5, 9.3
	return []Result{
		{
			ID:        "demo-tv-1",
			Title:     "Breaking Bad",
			Year:      "2008",
			Poster:    tmdbImageBase + "/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
			Overview:  "A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine.",
			Rating:    &r1,
			MediaType: "tv",
		},
		{
			ID:        "demo-tv-2",
			Title:     "Game of Thrones",
			Year:      "2011",
			Poster:    tmdbImageBase + "/1XS1oqL89opfnbLl8WnZY1O1uJx.jpg",
			Overview:  "Nine noble families fight for control over the lands of Westeros, while an ancient enemy returns after millennia.",
			Rating:    &r2,
			MediaType: "tv",
		},
	}
}
