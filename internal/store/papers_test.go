package store

import (
	"testing"
	"time"
)

var paperNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func paperStore(t *testing.T) *Store {
	t.Helper()
	s := testStore(t, paperNow)
	_, err := s.AddResearchArea(ResearchArea{
		Name:       "Machine Learning",
		Categories: []string{"cs.LG"},
		Keywords:   []string{"transformer"},
		Enabled:    true,
	})
	if err != nil {
		t.Fatalf("add area: %v", err)
	}
	return s
}

func candidate() Paper {
	return Paper{
		PaperID:    "2406.01234",
		Title:      "A New Transformer Architecture",
		Authors:    []string{"A. Author"},
		Abstract:   "We study the transformer. The transformer scales.",
		Categories: []string{"cs.LG"},
		PDFLink:    "https://arxiv.org/pdf/2406.01234.pdf",
	}
}

func TestIngestPaperStored(t *testing.T) {
	s := paperStore(t)

	p, status, err := s.IngestPaper(candidate())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if status != IngestStored {
		t.Fatalf("status = %q, want stored", status)
	}
	if p.RelevanceScore != 17 {
		t.Errorf("score = %d, want 17", p.RelevanceScore)
	}
	if p.Priority != "medium" {
		t.Errorf("priority = %q, want medium", p.Priority)
	}
	if p.Status != PaperUnread {
		t.Errorf("status = %q, want unread", p.Status)
	}
	if len(p.MatchedTopics) != 1 || p.MatchedTopics[0] != "Machine Learning" {
		t.Errorf("matched_topics = %v", p.MatchedTopics)
	}
	if len(p.Tags) != 0 {
		t.Errorf("tags = %v, want empty", p.Tags)
	}
	if !p.AddedAt.Equal(paperNow) {
		t.Errorf("added_at = %v, want pinned now", p.AddedAt)
	}
}

func TestIngestPaperDuplicate(t *testing.T) {
	s := paperStore(t)

	first, _, err := s.IngestPaper(candidate())
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	// Second ingest with different surface fields still dedupes on paper_id.
	dup := candidate()
	dup.Title = "A Renamed Transformer Architecture"
	got, status, err := s.IngestPaper(dup)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if status != IngestDuplicate {
		t.Fatalf("status = %q, want duplicate", status)
	}
	if got.Title != first.Title {
		t.Errorf("duplicate returned %q, want the first-stored record", got.Title)
	}

	papers, _ := s.ListPapers()
	if len(papers) != 1 {
		t.Errorf("storage size = %d, want 1", len(papers))
	}
}

func TestIngestPaperDiscarded(t *testing.T) {
	s := paperStore(t)

	p := Paper{
		PaperID:    "2406.09999",
		Title:      "Fungal Growth Patterns",
		Abstract:   "Mushrooms.",
		Categories: []string{"q-bio.PE"},
	}
	got, status, err := s.IngestPaper(p)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if status != IngestDiscarded {
		t.Fatalf("status = %q, want discarded", status)
	}
	if got != nil {
		t.Errorf("discarded ingest returned %+v, want nil", got)
	}

	papers, _ := s.ListPapers()
	if len(papers) != 0 {
		t.Errorf("storage size = %d, want 0 (never persisted)", len(papers))
	}
}

func TestIngestPaperIgnoresDisabledAreas(t *testing.T) {
	s := paperStore(t)
	enabled := false
	if _, err := s.ToggleResearchArea("machine-learning", &enabled); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	_, status, err := s.IngestPaper(candidate())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if status != IngestDiscarded {
		t.Errorf("status = %q, want discarded once the only area is disabled", status)
	}
}

func TestUpdatePaperImmutableFields(t *testing.T) {
	s := paperStore(t)
	p, _, err := s.IngestPaper(candidate())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	patch := []byte(`{"status":"reading","tags":["to-discuss"],"relevance_score":999,"priority":"high","paper_id":"hacked"}`)
	updated, err := s.UpdatePaper(p.PaperID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != PaperReading {
		t.Errorf("status = %q, want reading", updated.Status)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "to-discuss" {
		t.Errorf("tags = %v", updated.Tags)
	}
	if updated.RelevanceScore != 17 || updated.Priority != "medium" || updated.PaperID != p.PaperID {
		t.Errorf("immutable fields changed: %+v", updated)
	}
}

func TestRemoveAreaKeepsMatchedTopics(t *testing.T) {
	s := paperStore(t)
	p, _, err := s.IngestPaper(candidate())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	cfg, err := s.RemoveResearchArea("machine-learning")
	if err != nil {
		t.Fatalf("remove area: %v", err)
	}
	if cfg == nil || len(cfg.Areas) != 0 {
		t.Fatalf("area not removed: %+v", cfg)
	}

	got, err := s.GetPaper(p.PaperID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.MatchedTopics) != 1 || got.MatchedTopics[0] != "Machine Learning" {
		t.Errorf("matched_topics = %v, want unchanged after area removal", got.MatchedTopics)
	}
}

func TestAddResearchAreaSlugAndDuplicate(t *testing.T) {
	s := testStore(t, paperNow)

	cfg, err := s.AddResearchArea(ResearchArea{Name: "Distributed Systems", Enabled: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cfg.Areas[0].ID != "distributed-systems" {
		t.Errorf("slug = %q, want distributed-systems", cfg.Areas[0].ID)
	}

	if _, err := s.AddResearchArea(ResearchArea{Name: "Distributed Systems"}); err == nil {
		t.Error("duplicate area id should be rejected")
	}
}

func TestToggleAreaFlipWithoutValue(t *testing.T) {
	s := paperStore(t)

	a, err := s.ToggleResearchArea("machine-learning", nil)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if a.Enabled {
		t.Error("nil toggle should flip enabled -> disabled")
	}

	missing, err := s.ToggleResearchArea("nope", nil)
	if err != nil {
		t.Fatalf("toggle missing: %v", err)
	}
	if missing != nil {
		t.Error("unknown area should resolve to nil")
	}
}

func TestUpdateResearchConfigLeavesAreasAlone(t *testing.T) {
	s := paperStore(t)

	cfg, err := s.UpdateResearchConfig([]byte(`{"max_results":50,"days_back":7,"areas":[]}`))
	if err != nil {
		t.Fatalf("update config: %v", err)
	}
	if cfg.MaxResults != 50 || cfg.DaysBack != 7 {
		t.Errorf("settings = %d/%d, want 50/7", cfg.MaxResults, cfg.DaysBack)
	}
	if len(cfg.Areas) != 1 {
		t.Errorf("areas = %d, want 1 (config patch must not clobber areas)", len(cfg.Areas))
	}
}
