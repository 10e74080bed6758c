package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/engine"
	"github.com/lazypower/lifeboard/internal/store"
)

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := s.store.ListPeople()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, people)
}

func (s *Server) handleContactCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, engine.ContactCategories)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var p store.Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := s.store.CreatePerson(p)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	p, err := s.store.UpdatePerson(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "Relationship not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleLogContact(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.LogContact(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "Relationship not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePerson(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
