package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT4M13S", "4:13"},
		{"PT1H2M3S", "1:02:03"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"garbage", "N/A"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.iso); got != tt.want {
			t.Errorf("formatDuration(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		team, sport, date string
		want              string
	}{
		{"Arsenal", "soccer", "2024-03-15", "Arsenal highlights soccer March 15, 2024"},
		{"Arsenal", "", "", "Arsenal highlights"},
		{"Arsenal", "soccer", "not-a-date", "Arsenal highlights soccer"},
	}
	for _, tt := range tests {
		if got := BuildQuery(tt.team, tt.sport, tt.date); got != tt.want {
			t.Errorf("BuildQuery(%q, %q, %q) = %q, want %q", tt.team, tt.sport, tt.date, got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	searchBody := `{"items":[{"id":{"videoId":"abc123"},"snippet":{
	  "title":"Arsenal 3-1 Spurs | Highlights",
	  "description":"All the goals.",
	  "publishedAt":"2024-03-15T22:00:00Z",
	  "channelTitle":"Premier League",
	  "thumbnails":{"medium":{"url":"https://img/abc_med.jpg"}}}}]}`
	videosBody := `{"items":[{"id":"abc123","contentDetails":{"duration":"PT9M41S"}}]}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			if got := r.URL.Query().Get("q"); got != "Arsenal highlights" {
				t.Errorf("q = %q", got)
			}
			w.Write([]byte(searchBody))
		case "/videos":
			if got := r.URL.Query().Get("id"); got != "abc123" {
				t.Errorf("id = %q", got)
			}
			w.Write([]byte(videosBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	c := New("test-key")
	c.searchURL = ts.URL + "/search"
	c.videosURL = ts.URL + "/videos"

	videos, err := c.Search(context.Background(), "Arsenal highlights", 5, time.Time{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("videos = %d, want 1", len(videos))
	}

	v := videos[0]
	if v.ID != "abc123" {
		t.Errorf("id = %q", v.ID)
	}
	if v.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("url = %q", v.URL)
	}
	if v.Duration != "9:41" {
		t.Errorf("duration = %q", v.Duration)
	}
	if v.Thumbnail != "https://img/abc_med.jpg" {
		t.Errorf("thumbnail = %q", v.Thumbnail)
	}
}

func TestSearchQuota(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := New("test-key")
	c.searchURL = ts.URL

	_, err := c.Search(context.Background(), "anything", 5, time.Time{})
	if !errors.Is(err, ErrQuota) {
		t.Fatalf("err = %v, want ErrQuota", err)
	}
}

func TestSearchNoKey(t *testing.T) {
	c := New("")
	if _, err := c.Search(context.Background(), "q", 5, time.Time{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
