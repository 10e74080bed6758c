package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/lifeboard/internal/search"
)

// handleSearch fans out to the external catalog matching the media type.
// Sports entries are added by hand, so that type returns an empty list.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Query parameter required")
		return
	}

	var (
		results []search.Result
		err     error
	)
	switch chi.URLParam(r, "mediaType") {
	case "movie":
		results, err = s.tmdb.SearchMovies(r.Context(), query)
	case "tv":
		results, err = s.tmdb.SearchTV(r.Context(), query)
	case "book":
		results, err = s.books.SearchBooks(r.Context(), query)
	case "anime":
		results, err = s.anilist.SearchAnime(r.Context(), query)
	case "manga":
		results, err = s.anilist.SearchManga(r.Context(), query)
	case "sports":
		results = []search.Result{}
	default:
		respondError(w, http.StatusBadRequest, "Invalid media type")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []search.Result{}
	}
	respondJSON(w, http.StatusOK, results)
}
