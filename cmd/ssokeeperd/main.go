package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/octalbyte/ssokeeper/internal/config"
	"github.com/octalbyte/ssokeeper/internal/db"
	"github.com/octalbyte/ssokeeper/internal/server"
	"github.com/octalbyte/ssokeeper/internal/sso"
	"github.com/octalbyte/ssokeeper/internal/store"
	"github.com/octalbyte/ssokeeper/internal/version"
)

func main() {
	configPath := os.Getenv("SSOKEEPER_CONFIG")
	if configPath == "" {
		configPath = "ssokeeper.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	mgr := sso.NewManager(store.NewGormStore(database))
	seedEndpoint(mgr, cfg.Endpoint)

	router := server.NewRouter(mgr, cfg.AdminPassword)

	log.Printf("🚀 SSO Keeper %s starting on http://%s", version.Version, cfg.Listen)
	log.Printf("🎫 Token endpoint: http://%s/api/token", cfg.Listen)
	if cfg.AdminPassword != "" {
		log.Printf("🔒 Admin basic auth enabled")
	}

	if err := http.ListenAndServe(cfg.Listen, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// seedEndpoint writes the configured endpoint into the store on first run.
// An endpoint already stored wins over the file.
func seedEndpoint(mgr *sso.Manager, seed *config.EndpointSeed) {
	if seed == nil {
		return
	}
	ctx := context.Background()
	existing, err := mgr.Endpoint(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to read stored endpoint configuration: %v", err)
		return
	}
	if existing != nil {
		return
	}

	cfg := &sso.EndpointConfig{
		SSOURL:     seed.SSOURL,
		APIBaseURL: seed.APIBaseURL,
		ProjectID:  seed.ProjectID,
		Location:   seed.Location,
		ModelID:    seed.ModelID,
	}
	if err := mgr.SetEndpoint(ctx, cfg); err != nil {
		log.Printf("⚠️ Failed to seed endpoint configuration: %v", err)
		return
	}
	log.Printf("📦 Seeded endpoint configuration for %s", seed.SSOURL)
}
