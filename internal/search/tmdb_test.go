package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchMoviesDemoFallback(t *testing.T) {
	tm := NewTMDB("")

	results, err := tm.SearchMovies(context.Background(), "anything")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected demo results without an api key")
	}
	for _, r := range results {
		if r.MediaType != "movie" {
			t.Errorf("mediaType = %q, want movie", r.MediaType)
		}
	}
}

func TestSearchMovies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "dune" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`{"results":[{
		  "id": 438631,
		  "title": "Dune",
		  "release_date": "2021-09-15",
		  "poster_path": "/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
		  "overview": "Paul Atreides leads nomadic tribes in a battle for Arrakis.",
		  "vote_average": 7.8
		}]}`))
	}))
	defer ts.Close()

	tm := NewTMDB("real-key")
	tm.baseURL = ts.URL

	results, err := tm.SearchMovies(context.Background(), "dune")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}

	r := results[0]
	if r.ID != "tmdb-movie-438631" {
		t.Errorf("id = %q", r.ID)
	}
	if r.Year != "2021" {
		t.Errorf("year = %q", r.Year)
	}
	if r.Poster != tmdbImageBase+"/d5NXSklXo0qyIYkgV94XAgMIckC.jpg" {
		t.Errorf("poster = %q", r.Poster)
	}
	if r.Rating == nil || *r.Rating != 7.8 {
		t.Errorf("rating = %v", r.Rating)
	}
}

func TestSearchTVUsesNameAndFirstAirDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20"}]}`))
	}))
	defer ts.Close()

	tm := NewTMDB("real-key")
	tm.baseURL = ts.URL

	results, err := tm.SearchTV(context.Background(), "breaking bad")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Title != "Breaking Bad" {
		t.Errorf("title = %q", results[0].Title)
	}
	if results[0].MediaType != "tv" {
		t.Errorf("mediaType = %q", results[0].MediaType)
	}
}

func TestYearOf(t *testing.T) {
	if got := yearOf("2021-09-15"); got != "2021" {
		t.Errorf("yearOf = %q", got)
	}
	if got := yearOf(""); got != "N/A" {
		t.Errorf("yearOf empty = %q", got)
	}
}
