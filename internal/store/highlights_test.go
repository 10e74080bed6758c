package store

import (
	"testing"
	"time"
)

func TestSaveHighlightDedupes(t *testing.T) {
	s := testStore(t, time.Now())

	h := SavedHighlight{ID: "vid123", Title: "Full Match Highlights", URL: "https://www.youtube.com/watch?v=vid123"}
	first, err := s.SaveHighlight(h)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Watched {
		t.Error("saved highlight should start unwatched")
	}

	h.Title = "different title, same video"
	got, err := s.SaveHighlight(h)
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if got.Title != first.Title {
		t.Error("re-saving the same video should keep the first copy")
	}

	all, _ := s.ListSavedHighlights()
	if len(all) != 1 {
		t.Errorf("saved = %d, want 1", len(all))
	}
}

func TestDeleteHighlightBlacklists(t *testing.T) {
	s := testStore(t, time.Now())
	if _, err := s.SaveHighlight(SavedHighlight{ID: "vid123", Title: "x", URL: "u"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.DeleteSavedHighlight("vid123"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bl, err := s.Blacklist()
	if err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if len(bl) != 1 || bl[0] != "vid123" {
		t.Errorf("blacklist = %v, want [vid123]", bl)
	}

	// Deleting again must not double-blacklist.
	if err := s.DeleteSavedHighlight("vid123"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	bl, _ = s.Blacklist()
	if len(bl) != 1 {
		t.Errorf("blacklist grew on repeat delete: %v", bl)
	}
}

func TestRecordSearchDedupes(t *testing.T) {
	s := testStore(t, time.Now())

	if err := s.RecordSearch("Arsenal", "2024-05-10", "soccer"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordSearch("Arsenal", "2024-05-10", "soccer"); err != nil {
		t.Fatalf("re-record: %v", err)
	}

	hist, err := s.SearchHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 1 {
		t.Errorf("history = %d entries, want 1", len(hist))
	}
	if hist[0].SearchKey != "Arsenal-2024-05-10-soccer" {
		t.Errorf("searchKey = %q", hist[0].SearchKey)
	}
}

func TestSearchKeyDefaultsSport(t *testing.T) {
	if got := SearchKey("Arsenal", "2024-05-10", ""); got != "Arsenal-2024-05-10-any" {
		t.Errorf("key = %q", got)
	}
}

func TestTrustedChannels(t *testing.T) {
	s := testStore(t, time.Now())

	if err := s.AddTrustedChannel("Sky Sports"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddTrustedChannel("Sky Sports"); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	chans, _ := s.TrustedChannels()
	if len(chans) != 1 {
		t.Errorf("channels = %v, want one entry", chans)
	}

	if err := s.RemoveTrustedChannel("Sky Sports"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	chans, _ = s.TrustedChannels()
	if len(chans) != 0 {
		t.Errorf("channels = %v, want empty", chans)
	}
}
