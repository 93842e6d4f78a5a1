package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	defer os.Unsetenv("MONGODB_URI")

	cfg, err := Load("5000", RetrieveOrigins)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MongoDB.URI == "" {
		t.Fatalf("unexpected empty Mongo URI: %+v", cfg)
	}
	if cfg.MongoDB.Database != "details" {
		t.Fatalf("MongoDB.Database = %q, want %q", cfg.MongoDB.Database, "details")
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("Server.Port = %q, want default %q", cfg.Server.Port, "5000")
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment by default")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("unexpected allow-list: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_CORSOverride(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	defer func() {
		os.Unsetenv("MONGODB_URI")
		os.Unsetenv("CORS_ALLOWED_ORIGINS")
	}()

	cfg, err := Load("3000", UploadOrigins)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := cfg.CORS.AllowedOrigins
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("CORS override not applied: %v", got)
	}
}
