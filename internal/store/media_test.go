package store

import (
	"testing"
	"time"
)

func TestAddMediaDefaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := testStore(t, now)

	m, err := s.AddMedia(Media{Title: "Dune", MediaType: "movie"})
	if err != nil {
		t.Fatalf("AddMedia: %v", err)
	}
	if m.ID == "" {
		t.Error("expected generated id")
	}
	if m.Status != StatusPlanToWatch {
		t.Errorf("status = %q, want %q", m.Status, StatusPlanToWatch)
	}
	if !m.AddedDate.Equal(now) {
		t.Errorf("addedDate = %v", m.AddedDate)
	}
}

func TestAddMediaKeepsSearchResultID(t *testing.T) {
	s := testStore(t, time.Now())

	m, err := s.AddMedia(Media{ID: "tmdb-movie-438631", Title: "Dune", MediaType: "movie"})
	if err != nil {
		t.Fatalf("AddMedia: %v", err)
	}
	if m.ID != "tmdb-movie-438631" {
		t.Errorf("id = %q, want the provider-prefixed id kept", m.ID)
	}
}

func TestUpdateMediaProtectsIdentity(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := testStore(t, now)

	m, err := s.AddMedia(Media{Title: "Dune", MediaType: "movie"})
	if err != nil {
		t.Fatalf("AddMedia: %v", err)
	}

	rating := 9.5
	updated, err := s.UpdateMedia(m.ID, []byte(`{"id":"forged","addedDate":"2001-01-01T00:00:00Z","status":"completed","userRating":9.5}`))
	if err != nil {
		t.Fatalf("UpdateMedia: %v", err)
	}
	if updated.ID != m.ID {
		t.Errorf("id = %q, want unchanged", updated.ID)
	}
	if !updated.AddedDate.Equal(now) {
		t.Errorf("addedDate = %v, want unchanged", updated.AddedDate)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.UserRating == nil || *updated.UserRating != rating {
		t.Errorf("userRating = %v", updated.UserRating)
	}
}

func TestSportsMediaCRUD(t *testing.T) {
	s := testStore(t, time.Now())

	m, err := s.AddSportsMedia(SportsMedia{Title: "Arsenal vs Spurs", Sport: "soccer", League: "EPL"})
	if err != nil {
		t.Fatalf("AddSportsMedia: %v", err)
	}
	if m.Status != StatusPlanToWatch {
		t.Errorf("status = %q", m.Status)
	}

	updated, err := s.UpdateSportsMedia(m.ID, []byte(`{"status":"completed","notes":"what a derby"}`))
	if err != nil {
		t.Fatalf("UpdateSportsMedia: %v", err)
	}
	if updated.Status != StatusCompleted || updated.Notes != "what a derby" {
		t.Errorf("updated = %+v", updated)
	}

	if err := s.DeleteSportsMedia(m.ID); err != nil {
		t.Fatalf("DeleteSportsMedia: %v", err)
	}
	got, err := s.GetSportsMedia(m.ID)
	if err != nil {
		t.Fatalf("GetSportsMedia: %v", err)
	}
	if got != nil {
		t.Error("entry still present after delete")
	}
}

func TestTeams(t *testing.T) {
	s := testStore(t, time.Now())

	team, err := s.AddTeam(Team{Name: "Arsenal", Sport: "soccer"})
	if err != nil {
		t.Fatalf("AddTeam: %v", err)
	}

	teams, err := s.ListTeams()
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Arsenal" {
		t.Errorf("teams = %+v", teams)
	}

	if err := s.DeleteTeam(team.ID); err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}
	teams, _ = s.ListTeams()
	if len(teams) != 0 {
		t.Errorf("teams = %d after delete, want 0", len(teams))
	}
}
