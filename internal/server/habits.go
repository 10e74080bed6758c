package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/store"
)

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.store.ListHabits()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, habits)
}

func (s *Server) handleGetHabit(w http.ResponseWriter, r *http.Request) {
	h, err := s.store.GetHabit(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h == nil {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func (s *Server) handleAddHabit(w http.ResponseWriter, r *http.Request) {
	var h store.Habit
	if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	added, err := s.store.AddHabit(h)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateHabit(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read body failed")
		return
	}
	h, err := s.store.UpdateHabit(chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h == nil {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

// completionDate reads the optional {"date":"YYYY-MM-DD"} body. An absent
// body means today; a body that isn't valid JSON is an error, not today.
func completionDate(r *http.Request) (string, error) {
	var req struct {
		Date string `json:"date"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	return req.Date, nil
}

func (s *Server) handleCompleteHabit(w http.ResponseWriter, r *http.Request) {
	date, err := completionDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h, err := s.store.CompleteHabit(chi.URLParam(r, "id"), date)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h == nil {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func (s *Server) handleUncompleteHabit(w http.ResponseWriter, r *http.Request) {
	date, err := completionDate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h, err := s.store.UncompleteHabit(chi.URLParam(r, "id"), date)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h == nil {
		respondError(w, http.StatusNotFound, "Habit not found")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteHabit(chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
