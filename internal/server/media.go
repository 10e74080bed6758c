package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/store"
)

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := s.store.ListMedia()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, media)
}

func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.GetMedia(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *Server) handleAddMedia(w http.ResponseWriter, r *http.Request) {
	var m store.Media
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	added, err := s.store.AddMedia(m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateMedia(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	m, err := s.store.UpdateMedia(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteMedia(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
