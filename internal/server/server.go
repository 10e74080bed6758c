package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lazypower/lifeboard/internal/arxiv"
	"github.com/lazypower/lifeboard/internal/search"
	"github.com/lazypower/lifeboard/internal/store"
	"github.com/lazypower/lifeboard/internal/youtube"
)

// PaperFetcher pulls recent papers from the arXiv feed.
type PaperFetcher interface {
	Fetch(ctx context.Context, categories []string, maxResults, daysBack int) ([]arxiv.Paper, error)
}

// HighlightFinder searches YouTube for sports highlight videos.
type HighlightFinder interface {
	Configured() bool
	Search(ctx context.Context, query string, maxResults int, publishedAfter time.Time) ([]youtube.Video, error)
}

// Clients bundles the external service clients the API fans out to.
type Clients struct {
	TMDB    *search.TMDB
	Books   *search.Books
	AniList *search.AniList
	ArXiv   PaperFetcher
	YouTube HighlightFinder
}

// Server is the lifeboard HTTP API server.
type Server struct {
	store   *store.Store
	tmdb    *search.TMDB
	books   *search.Books
	anilist *search.AniList
	arxiv   PaperFetcher
	youtube HighlightFinder
	router  chi.Router
	version string
	started time.Time
}

// New creates a new Server over the given store and clients.
func New(st *store.Store, clients Clients, version string) *Server {
	s := &Server{
		store:   st,
		tmdb:    clients.TMDB,
		books:   clients.Books,
		anilist: clients.AniList,
		arxiv:   clients.ArXiv,
		youtube: clients.YouTube,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/search/{mediaType}", s.handleSearch)

		r.Route("/media", func(r chi.Router) {
			r.Get("/", s.handleListMedia)
			r.Post("/", s.handleAddMedia)
			r.Get("/{id}", s.handleGetMedia)
			r.Patch("/{id}", s.handleUpdateMedia)
			r.Delete("/{id}", s.handleDeleteMedia)
		})

		r.Route("/sports", func(r chi.Router) {
			r.Get("/", s.handleListSports)
			r.Post("/", s.handleAddSports)
			r.Get("/{id}", s.handleGetSports)
			r.Patch("/{id}", s.handleUpdateSports)
			r.Delete("/{id}", s.handleDeleteSports)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", s.handleListTeams)
			r.Post("/", s.handleAddTeam)
			r.Delete("/{id}", s.handleDeleteTeam)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.handleListTodos)
			r.Post("/", s.handleAddTodo)
			r.Get("/{id}", s.handleGetTodo)
			r.Patch("/{id}", s.handleUpdateTodo)
			r.Delete("/{id}", s.handleDeleteTodo)
		})

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.handleListHabits)
			r.Post("/", s.handleAddHabit)
			r.Get("/{id}", s.handleGetHabit)
			r.Patch("/{id}", s.handleUpdateHabit)
			r.Delete("/{id}", s.handleDeleteHabit)
			r.Post("/{id}/complete", s.handleCompleteHabit)
			r.Post("/{id}/uncomplete", s.handleUncompleteHabit)
		})

		r.Route("/papers", func(r chi.Router) {
			r.Get("/", s.handleListPapers)
			r.Get("/config", s.handleGetResearchConfig)
			r.Patch("/config", s.handleUpdateResearchConfig)
			r.Get("/categories", s.handleArxivCategories)
			r.Post("/fetch", s.handleFetchPapers)
			r.Post("/areas", s.handleAddResearchArea)
			r.Post("/areas/{id}/toggle", s.handleToggleResearchArea)
			r.Delete("/areas/{id}", s.handleRemoveResearchArea)
			r.Get("/{id}", s.handleGetPaper)
			r.Patch("/{id}", s.handleUpdatePaper)
			r.Delete("/{id}", s.handleDeletePaper)
		})

		r.Route("/relationships", func(r chi.Router) {
			r.Get("/", s.handleListPeople)
			r.Post("/", s.handleCreatePerson)
			r.Get("/categories", s.handleContactCategories)
			r.Put("/{id}", s.handleUpdatePerson)
			r.Post("/{id}/contact", s.handleLogContact)
			r.Delete("/{id}", s.handleDeletePerson)
		})

		r.Route("/highlights", func(r chi.Router) {
			r.Get("/", s.handleSearchHighlights)
			r.Get("/discover", s.handleDiscoverHighlights)
		})

		r.Route("/saved-highlights", func(r chi.Router) {
			r.Get("/", s.handleListSavedHighlights)
			r.Post("/", s.handleSaveHighlight)
			r.Get("/trusted-channels", s.handleListTrustedChannels)
			r.Post("/trusted-channels", s.handleAddTrustedChannel)
			r.Delete("/trusted-channels/{name}", s.handleRemoveTrustedChannel)
			r.Patch("/{id}", s.handleUpdateSavedHighlight)
			r.Delete("/{id}", s.handleDeleteSavedHighlight)
		})
	})

	// Everything outside /api is the embedded UI.
	r.NotFound(spaHandler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  s.version,
		"uptime":   time.Since(s.started).Seconds(),
		"data_dir": s.store.Dir,
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
