package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lazypower/lifeboard/internal/arxiv"
	"github.com/lazypower/lifeboard/internal/config"
	"github.com/lazypower/lifeboard/internal/search"
	"github.com/lazypower/lifeboard/internal/server"
	"github.com/lazypower/lifeboard/internal/store"
	"github.com/lazypower/lifeboard/internal/youtube"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir, err = store.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	clients := server.Clients{
		TMDB:    search.NewTMDB(cfg.Keys.TMDB),
		Books:   search.NewBooks(cfg.Keys.GoogleBooks),
		AniList: search.NewAniList(),
		ArXiv:   arxiv.New(),
		YouTube: youtube.New(cfg.Keys.YouTube),
	}

	srv := server.New(st, clients, VersionString())
	addr := cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Fprintf(os.Stderr, "lifeboard serving on %s\n", addr)
		fmt.Fprintf(os.Stderr, "  data: %s\n", dataDir)
		if cfg.Keys.TMDB == "" {
			fmt.Fprintln(os.Stderr, "  tmdb: no key, movie/tv search returns demo data")
		}
		if cfg.Keys.YouTube == "" {
			fmt.Fprintln(os.Stderr, "  youtube: no key, highlight search disabled")
		}
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-done
	fmt.Fprintln(os.Stderr, "\nshutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
