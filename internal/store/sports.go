package store

import (
	"time"

	"github.com/google/uuid"
)

const (
	sportsFile = "sports.json"
	teamsFile  = "teams.json"
)

// SportsMedia is a manually tracked game or match — sports have no search
// provider, so entries are user-created.
type SportsMedia struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Sport     string    `json:"sport"`
	League    string    `json:"league,omitempty"`
	EventDate string    `json:"eventDate,omitempty"` // YYYY-MM-DD
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	AddedDate time.Time `json:"addedDate"`
}

type sportsDoc struct {
	Sports []SportsMedia `json:"sports"`
}

// Team is a favorite team used to drive highlight auto-discovery.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	League    string    `json:"league,omitempty"`
	AddedDate time.Time `json:"addedDate"`
}

type teamsDoc struct {
	Teams []Team `json:"teams"`
}

// ListSportsMedia returns every tracked game.
func (s *Store) ListSportsMedia() ([]SportsMedia, error) {
	var doc sportsDoc
	if err := s.readDoc(sportsFile, &doc); err != nil {
		return nil, err
	}
	if doc.Sports == nil {
		doc.Sports = []SportsMedia{}
	}
	return doc.Sports, nil
}

// GetSportsMedia returns a tracked game by id, or nil if absent.
func (s *Store) GetSportsMedia(id string) (*SportsMedia, error) {
	items, err := s.ListSportsMedia()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// AddSportsMedia stores a new game entry.
func (s *Store) AddSportsMedia(m SportsMedia) (*SportsMedia, error) {
	var doc sportsDoc
	if err := s.readDoc(sportsFile, &doc); err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	if m.Status == "" {
		m.Status = StatusPlanToWatch
	}
	m.AddedDate = s.now()

	doc.Sports = append(doc.Sports, m)
	if err := s.writeDoc(sportsFile, &doc); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateSportsMedia applies a JSON patch to a game entry.
func (s *Store) UpdateSportsMedia(id string, patch []byte) (*SportsMedia, error) {
	var doc sportsDoc
	if err := s.readDoc(sportsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Sports {
		if doc.Sports[i].ID != id {
			continue
		}
		prev := doc.Sports[i]
		if err := mergePatch(&doc.Sports[i], patch); err != nil {
			return nil, err
		}
		doc.Sports[i].ID = prev.ID
		doc.Sports[i].AddedDate = prev.AddedDate
		if err := s.writeDoc(sportsFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Sports[i], nil
	}
	return nil, nil
}

// DeleteSportsMedia removes a game entry permanently.
func (s *Store) DeleteSportsMedia(id string) error {
	var doc sportsDoc
	if err := s.readDoc(sportsFile, &doc); err != nil {
		return err
	}
	kept := doc.Sports[:0]
	for _, m := range doc.Sports {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	doc.Sports = kept
	return s.writeDoc(sportsFile, &doc)
}

// ListTeams returns the favorite teams.
func (s *Store) ListTeams() ([]Team, error) {
	var doc teamsDoc
	if err := s.readDoc(teamsFile, &doc); err != nil {
		return nil, err
	}
	if doc.Teams == nil {
		doc.Teams = []Team{}
	}
	return doc.Teams, nil
}

// AddTeam registers a favorite team.
func (s *Store) AddTeam(t Team) (*Team, error) {
	var doc teamsDoc
	if err := s.readDoc(teamsFile, &doc); err != nil {
		return nil, err
	}

	t.ID = uuid.NewString()
	t.AddedDate = s.now()

	doc.Teams = append(doc.Teams, t)
	if err := s.writeDoc(teamsFile, &doc); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTeam removes a favorite team.
func (s *Store) DeleteTeam(id string) error {
	var doc teamsDoc
	if err := s.readDoc(teamsFile, &doc); err != nil {
		return err
	}
	kept := doc.Teams[:0]
	for _, t := range doc.Teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	doc.Teams = kept
	return s.writeDoc(teamsFile, &doc)
}
