package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/store"
	"github.com/lazypower/lifeboard/internal/youtube"
)

// handleSearchHighlights searches YouTube for one team's recent highlights.
func (s *Server) handleSearchHighlights(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		respondError(w, http.StatusBadRequest, "Team parameter required")
		return
	}
	if s.youtube == nil || !s.youtube.Configured() {
		respondError(w, http.StatusInternalServerError, "YouTube API key not configured")
		return
	}

	date := r.URL.Query().Get("date")
	sport := r.URL.Query().Get("sport")

	// Look a day behind the requested date so late uploads still show up.
	after := s.store.Now().Add(-24 * time.Hour)
	if d, err := time.Parse("2006-01-02", date); err == nil {
		after = d.AddDate(0, 0, -1)
	}

	query := youtube.BuildQuery(team, sport, date)
	videos, err := s.youtube.Search(r.Context(), query, 5, after)
	if err != nil {
		if errors.Is(err, youtube.ErrQuota) {
			respondError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	blacklisted, err := s.blacklistSet()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	results := make([]youtube.Video, 0, len(videos))
	for _, v := range videos {
		if !blacklisted[v.ID] {
			results = append(results, v)
		}
	}

	if err := s.store.RecordSearch(team, date, sport); err != nil {
		log.Printf("record search history: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}

// searchPacing is the gap between consecutive YouTube searches during
// auto-discovery.
var searchPacing = 100 * time.Millisecond

// discoveredVideo tags a search result with the team context it was found
// for, so the UI can group auto-discovered highlights.
type discoveredVideo struct {
	youtube.Video
	Team       string `json:"team"`
	Sport      string `json:"sport"`
	SearchDate string `json:"searchDate"`
}

// handleDiscoverHighlights sweeps every favorite team for highlights from
// today and yesterday. Searches already in the history are skipped to
// conserve API quota.
func (s *Server) handleDiscoverHighlights(w http.ResponseWriter, r *http.Request) {
	if s.youtube == nil || !s.youtube.Configured() {
		respondError(w, http.StatusInternalServerError, "YouTube API key not configured")
		return
	}

	teams, err := s.store.ListTeams()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(teams) == 0 {
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "No favorite teams found",
			"results": []discoveredVideo{},
		})
		return
	}

	blacklisted, err := s.blacklistSet()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	history, err := s.store.SearchHistory()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	searched := make(map[string]bool, len(history))
	for _, rec := range history {
		searched[rec.SearchKey] = true
	}

	now := s.store.Now()
	dates := []string{
		now.Format("2006-01-02"),
		now.AddDate(0, 0, -1).Format("2006-01-02"),
	}
	after := now.AddDate(0, 0, -7)

	found := []discoveredVideo{}
	requests := 0
	for _, team := range teams {
		for _, date := range dates {
			if searched[store.SearchKey(team.Name, date, team.Sport)] {
				continue
			}

			// Pace the sweep so a long team list doesn't burst the quota.
			if requests > 0 {
				time.Sleep(searchPacing)
			}
			requests++

			query := youtube.BuildQuery(team.Name, team.Sport, date)
			videos, err := s.youtube.Search(r.Context(), query, 3, after)
			if err != nil {
				if errors.Is(err, youtube.ErrQuota) {
					respondJSON(w, http.StatusTooManyRequests, map[string]any{
						"error":          "YouTube API quota exceeded",
						"message":        "Please try again later or reduce the number of teams",
						"partialResults": found,
					})
					return
				}
				log.Printf("highlight search for %s: %v", team.Name, err)
				continue
			}

			for _, v := range videos {
				if blacklisted[v.ID] {
					continue
				}
				found = append(found, discoveredVideo{
					Video:      v,
					Team:       team.Name,
					Sport:      team.Sport,
					SearchDate: date,
				})
			}

			if err := s.store.RecordSearch(team.Name, date, team.Sport); err != nil {
				log.Printf("record search history: %v", err)
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Found %d new highlights", len(found)),
		"results":       found,
		"teamsSearched": len(teams),
	})
}

func (s *Server) blacklistSet() (map[string]bool, error) {
	ids, err := s.store.Blacklist()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *Server) handleListSavedHighlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := s.store.ListSavedHighlights()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, highlights)
}

func (s *Server) handleSaveHighlight(w http.ResponseWriter, r *http.Request) {
	var h store.SavedHighlight
	if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	saved, err := s.store.SaveHighlight(h)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdateSavedHighlight(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	h, err := s.store.UpdateSavedHighlight(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h == nil {
		respondError(w, http.StatusNotFound, "Highlight not found")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteSavedHighlight(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSavedHighlight(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTrustedChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := s.store.TrustedChannels()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, channels)
}

func (s *Server) handleAddTrustedChannel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChannelName string `json:"channelName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChannelName == "" {
		respondError(w, http.StatusBadRequest, "channelName required")
		return
	}
	if err := s.store.AddTrustedChannel(req.ChannelName); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (s *Server) handleRemoveTrustedChannel(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid channel name")
		return
	}
	if err := s.store.RemoveTrustedChannel(name); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
