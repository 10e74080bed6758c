package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all lifeboard configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Keys    KeysConfig    `toml:"keys"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// KeysConfig carries API keys for the external search and highlight
// services. Any key may be empty; the affected endpoints degrade to demo
// data or an explicit not-configured error.
type KeysConfig struct {
	TMDB        string `toml:"tmdb"`
	GoogleBooks string `toml:"google_books"`
	YouTube     string `toml:"youtube"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 3001,
		},
		Storage: StorageConfig{
			DataDir: "", // resolved at runtime via store.DefaultDataDir()
		},
	}
}

// Load builds the effective configuration: defaults, overlaid by
// ~/.lifeboard/config.toml when present, overlaid by environment
// variables. A .env file in the working directory is read first so API
// keys can live next to a local checkout.
func Load() (Config, error) {
	cfg := Default()

	// Missing .env is the normal case.
	_ = godotenv.Load()

	path := configPath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lifeboard", "config.toml")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LIFEBOARD_BIND"); v != "" {
		cfg.Server.Bind = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFEBOARD_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.Keys.TMDB = v
	}
	if v := os.Getenv("GOOGLE_BOOKS_API_KEY"); v != "" {
		cfg.Keys.GoogleBooks = v
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.Keys.YouTube = v
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
