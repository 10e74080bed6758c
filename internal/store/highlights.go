package store

import (
	"fmt"
	"time"
)

const highlightsFile = "highlights.json"

// SavedHighlight is a YouTube highlight saved to the watchlist. The id is
// the YouTube video id.
type SavedHighlight struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	PublishedAt  string    `json:"publishedAt,omitempty"`
	ChannelTitle string    `json:"channelTitle,omitempty"`
	Team         string    `json:"team,omitempty"`
	Sport        string    `json:"sport,omitempty"`
	SearchDate   string    `json:"searchDate,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	SavedAt      time.Time `json:"savedAt"`
	Watched      bool      `json:"watched"`
}

// SearchRecord remembers a highlight search so auto-discovery doesn't repeat
// it and burn API quota.
type SearchRecord struct {
	SearchKey  string    `json:"searchKey"` // team-date-sport
	Team       string    `json:"team"`
	Date       string    `json:"date"`
	Sport      string    `json:"sport"`
	SearchedAt time.Time `json:"searchedAt"`
}

type highlightsDoc struct {
	Highlights      []SavedHighlight `json:"highlights"`
	SearchHistory   []SearchRecord   `json:"searchHistory"`
	Blacklist       []string         `json:"blacklist"`
	TrustedChannels []string         `json:"trustedChannels"`
}

// ListSavedHighlights returns the highlight watchlist.
func (s *Store) ListSavedHighlights() ([]SavedHighlight, error) {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}
	if doc.Highlights == nil {
		doc.Highlights = []SavedHighlight{}
	}
	return doc.Highlights, nil
}

// SaveHighlight adds a highlight to the watchlist. Saving the same video id
// twice keeps the first copy.
func (s *Store) SaveHighlight(h SavedHighlight) (*SavedHighlight, error) {
	if h.ID == "" {
		return nil, fmt.Errorf("highlight id required")
	}

	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Highlights {
		if doc.Highlights[i].ID == h.ID {
			return &doc.Highlights[i], nil
		}
	}

	h.SavedAt = s.now()
	h.Watched = false
	doc.Highlights = append(doc.Highlights, h)
	if err := s.writeDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateSavedHighlight patches a saved highlight (typically toggling
// watched). Returns nil when the highlight is not saved.
func (s *Store) UpdateSavedHighlight(id string, patch []byte) (*SavedHighlight, error) {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Highlights {
		if doc.Highlights[i].ID != id {
			continue
		}
		prev := doc.Highlights[i]
		if err := mergePatch(&doc.Highlights[i], patch); err != nil {
			return nil, err
		}
		doc.Highlights[i].ID = prev.ID
		doc.Highlights[i].SavedAt = prev.SavedAt
		if err := s.writeDoc(highlightsFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Highlights[i], nil
	}
	return nil, nil
}

// DeleteSavedHighlight removes a highlight from the watchlist and blacklists
// the video id so discovery never resurfaces it.
func (s *Store) DeleteSavedHighlight(id string) error {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return err
	}

	blacklisted := false
	for _, b := range doc.Blacklist {
		if b == id {
			blacklisted = true
			break
		}
	}
	if !blacklisted {
		doc.Blacklist = append(doc.Blacklist, id)
	}

	kept := doc.Highlights[:0]
	for _, h := range doc.Highlights {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	doc.Highlights = kept
	return s.writeDoc(highlightsFile, &doc)
}

// Blacklist returns the video ids that must never be shown again.
func (s *Store) Blacklist() ([]string, error) {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}
	if doc.Blacklist == nil {
		doc.Blacklist = []string{}
	}
	return doc.Blacklist, nil
}

// SearchHistory returns past highlight searches.
func (s *Store) SearchHistory() ([]SearchRecord, error) {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}
	if doc.SearchHistory == nil {
		doc.SearchHistory = []SearchRecord{}
	}
	return doc.SearchHistory, nil
}

// RecordSearch remembers that team/date/sport was searched. Re-recording an
// identical search is a no-op.
func (s *Store) RecordSearch(team, date, sport string) error {
	key := SearchKey(team, date, sport)

	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return err
	}
	for _, r := range doc.SearchHistory {
		if r.SearchKey == key {
			return nil
		}
	}

	doc.SearchHistory = append(doc.SearchHistory, SearchRecord{
		SearchKey:  key,
		Team:       team,
		Date:       date,
		Sport:      sport,
		SearchedAt: s.now(),
	})
	return s.writeDoc(highlightsFile, &doc)
}

// SearchKey builds the dedup key for a highlight search.
func SearchKey(team, date, sport string) string {
	if sport == "" {
		sport = "any"
	}
	return fmt.Sprintf("%s-%s-%s", team, date, sport)
}

// TrustedChannels returns channels whose uploads are preferred.
func (s *Store) TrustedChannels() ([]string, error) {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return nil, err
	}
	if doc.TrustedChannels == nil {
		doc.TrustedChannels = []string{}
	}
	return doc.TrustedChannels, nil
}

// AddTrustedChannel marks a channel as trusted. Duplicates collapse.
func (s *Store) AddTrustedChannel(name string) error {
	if name == "" {
		return fmt.Errorf("channel name required")
	}

	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return err
	}
	for _, c := range doc.TrustedChannels {
		if c == name {
			return nil
		}
	}
	doc.TrustedChannels = append(doc.TrustedChannels, name)
	return s.writeDoc(highlightsFile, &doc)
}

// RemoveTrustedChannel unmarks a trusted channel.
func (s *Store) RemoveTrustedChannel(name string) error {
	var doc highlightsDoc
	if err := s.readDoc(highlightsFile, &doc); err != nil {
		return err
	}
	kept := doc.TrustedChannels[:0]
	for _, c := range doc.TrustedChannels {
		if c != name {
			kept = append(kept, c)
		}
	}
	doc.TrustedChannels = kept
	return s.writeDoc(highlightsFile, &doc)
}
