package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchBooksDemoFallback(t *testing.T) {
	b := NewBooks("")

	results, err := b.SearchBooks(context.Background(), "anything")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected demo results without an api key")
	}
	if results[0].MediaType != "book" {
		t.Errorf("mediaType = %q", results[0].MediaType)
	}
}

func TestSearchBooks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"items":[{
		  "id": "zyTCAlFPjgYC",
		  "volumeInfo": {
		    "title": "The Google Story",
		    "publishedDate": "2005-11-15",
		    "authors": ["David A. Vise", "Mark Malseed"],
		    "pageCount": 207,
		    "imageLinks": {"thumbnail": "https://img/google-story.jpg"}
		  }
		}]}`))
	}))
	defer ts.Close()

	b := NewBooks("real-key")
	b.baseURL = ts.URL

	results, err := b.SearchBooks(context.Background(), "google")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}

	r := results[0]
	if r.ID != "book-zyTCAlFPjgYC" {
		t.Errorf("id = %q", r.ID)
	}
	if r.Author != "David A. Vise, Mark Malseed" {
		t.Errorf("author = %q, want authors joined", r.Author)
	}
	if r.Year != "2005" {
		t.Errorf("year = %q", r.Year)
	}
	if r.Pages != 207 {
		t.Errorf("pages = %d", r.Pages)
	}
	if r.Overview != "No description available" {
		t.Errorf("overview = %q", r.Overview)
	}
}
