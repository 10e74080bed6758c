package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/store"
)

func (s *Server) handleListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := s.store.ListSportsMedia()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, sports)
}

func (s *Server) handleGetSports(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.GetSportsMedia(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Sports media not found")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *Server) handleAddSports(w http.ResponseWriter, r *http.Request) {
	var m store.SportsMedia
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	added, err := s.store.AddSportsMedia(m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateSports(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	m, err := s.store.UpdateSportsMedia(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Sports media not found")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteSports(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSportsMedia(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.store.ListTeams()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, teams)
}

func (s *Server) handleAddTeam(w http.ResponseWriter, r *http.Request) {
	var t store.Team
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	added, err := s.store.AddTeam(t)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTeam(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
