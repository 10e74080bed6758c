package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/arxiv"
	"github.com/lazypower/lifeboard/internal/store"
)

func (s *Server) handleListPapers(w http.ResponseWriter, r *http.Request) {
	papers, err := s.store.ListPapers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, papers)
}

func (s *Server) handleGetPaper(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetPaper(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "Paper not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePaper(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	p, err := s.store.UpdatePaper(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "Paper not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePaper(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePaper(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetResearchConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetResearchConfig()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleUpdateResearchConfig(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	cfg, err := s.store.UpdateResearchConfig(patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleArxivCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, arxiv.Categories())
}

func (s *Server) handleAddResearchArea(w http.ResponseWriter, r *http.Request) {
	var area store.ResearchArea
	if err := json.NewDecoder(r.Body).Decode(&area); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	cfg, err := s.store.AddResearchArea(area)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, cfg)
}

func (s *Server) handleToggleResearchArea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled *bool `json:"enabled"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid json")
			return
		}
	}
	area, err := s.store.ToggleResearchArea(chi.URLParam(r, "id"), req.Enabled)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if area == nil {
		respondError(w, http.StatusNotFound, "Research area not found")
		return
	}
	respondJSON(w, http.StatusOK, area)
}

func (s *Server) handleRemoveResearchArea(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.RemoveResearchArea(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cfg == nil {
		respondError(w, http.StatusNotFound, "Research area not found")
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// handleFetchPapers pulls the feed for every enabled research area and runs
// each candidate through the relevance gate. The response reports how many
// papers came back and how many survived.
func (s *Server) handleFetchPapers(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetResearchConfig()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var categories []string
	seen := map[string]bool{}
	for _, area := range cfg.Areas {
		if !area.Enabled {
			continue
		}
		for _, cat := range area.Categories {
			if !seen[cat] {
				seen[cat] = true
				categories = append(categories, cat)
			}
		}
	}
	if len(categories) == 0 {
		respondJSON(w, http.StatusOK, map[string]any{
			"message":       "No active research areas configured",
			"added":         0,
			"total_fetched": 0,
		})
		return
	}

	fetched, err := s.arxiv.Fetch(r.Context(), categories, cfg.MaxResults, cfg.DaysBack)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	added, duplicates, discarded := 0, 0, 0
	for _, p := range fetched {
		_, status, err := s.store.IngestPaper(store.Paper{
			PaperID:     p.PaperID,
			Title:       p.Title,
			Authors:     p.Authors,
			Abstract:    p.Abstract,
			Categories:  p.Categories,
			PublishedAt: p.PublishedAt,
			PDFLink:     p.PDFLink,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		switch status {
		case store.IngestStored:
			added++
		case store.IngestDuplicate:
			duplicates++
		case store.IngestDiscarded:
			discarded++
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":       fmt.Sprintf("Fetched %d papers, added %d relevant papers", len(fetched), added),
		"added":         added,
		"duplicates":    duplicates,
		"discarded":     discarded,
		"total_fetched": len(fetched),
	})
}
