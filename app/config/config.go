package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. It is built once in main and
// passed into the route setup functions; nothing mutates it after startup.
type Config struct {
	// SupabaseURL is the project base URL, e.g. https://xyz.supabase.co
	SupabaseURL string
	// SupabaseAnonKey is the public (anon) API key.
	SupabaseAnonKey string
	// SiteURL is the externally reachable base URL of this app, used to
	// build the OAuth callback address.
	SiteURL string
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string
}

// Load reads configuration from the environment. A local .env file is
// loaded first when present so development works without exported vars.
func Load() (*Config, error) {
	// Missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:     os.Getenv("PUBLIC_SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("PUBLIC_SUPABASE_ANON_KEY"),
		SiteURL:         os.Getenv("SITE_URL"),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("PUBLIC_SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("PUBLIC_SUPABASE_ANON_KEY is required")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "http://localhost:3000"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":3000"
	}

	return cfg, nil
}
