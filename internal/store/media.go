package store

import (
	"time"

	"github.com/google/uuid"
)

const mediaFile = "media.json"

// Media statuses. The same set serves movies, TV, books, anime, and manga.
const (
	StatusPlanToWatch = "plan_to_watch"
	StatusWatching    = "watching"
	StatusCompleted   = "completed"
	StatusDropped     = "dropped"
)

// Media is one item in the library: a movie, show, book, anime, or manga,
// usually seeded from a search result and then tracked by the user.
type Media struct {
	ID           string     `json:"id"`
	ExternalID   string     `json:"externalId,omitempty"`
	Title        string     `json:"title"`
	Year         string     `json:"year,omitempty"`
	Poster       string     `json:"poster,omitempty"`
	Overview     string     `json:"overview,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	MediaType    string     `json:"mediaType"`
	Status       string     `json:"status"`
	StartDate    *string    `json:"startDate"`
	CompleteDate *string    `json:"completeDate"`
	UserRating   *float64   `json:"userRating"`
	Notes        string     `json:"notes"`
	Progress     *int       `json:"progress"`
	AddedDate    time.Time  `json:"addedDate"`
}

type mediaDoc struct {
	Media []Media `json:"media"`
}

// ListMedia returns the whole library.
func (s *Store) ListMedia() ([]Media, error) {
	var doc mediaDoc
	if err := s.readDoc(mediaFile, &doc); err != nil {
		return nil, err
	}
	if doc.Media == nil {
		doc.Media = []Media{}
	}
	return doc.Media, nil
}

// GetMedia returns an item by id, or nil if absent.
func (s *Store) GetMedia(id string) (*Media, error) {
	items, err := s.ListMedia()
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

// AddMedia stores a new library item, defaulting the tracking fields. Items
// picked from search keep their provider-prefixed id; manual entries get a
// fresh one.
func (s *Store) AddMedia(m Media) (*Media, error) {
	var doc mediaDoc
	if err := s.readDoc(mediaFile, &doc); err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = StatusPlanToWatch
	}
	m.AddedDate = s.now()

	doc.Media = append(doc.Media, m)
	if err := s.writeDoc(mediaFile, &doc); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMedia applies a JSON patch to an item.
func (s *Store) UpdateMedia(id string, patch []byte) (*Media, error) {
	var doc mediaDoc
	if err := s.readDoc(mediaFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Media {
		if doc.Media[i].ID != id {
			continue
		}
		prev := doc.Media[i]
		if err := mergePatch(&doc.Media[i], patch); err != nil {
			return nil, err
		}
		doc.Media[i].ID = prev.ID
		doc.Media[i].AddedDate = prev.AddedDate
		if err := s.writeDoc(mediaFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Media[i], nil
	}
	return nil, nil
}

// DeleteMedia removes an item permanently.
func (s *Store) DeleteMedia(id string) error {
	var doc mediaDoc
	if err := s.readDoc(mediaFile, &doc); err != nil {
		return err
	}
	kept := doc.Media[:0]
	for _, m := range doc.Media {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	doc.Media = kept
	return s.writeDoc(mediaFile, &doc)
}
