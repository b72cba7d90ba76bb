package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8086" {
		t.Errorf("Listen = %q, want 127.0.0.1:8086", cfg.Listen)
	}
	if cfg.DBPath != "ssokeeper.db" {
		t.Errorf("DBPath = %q, want ssokeeper.db", cfg.DBPath)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8086" {
		t.Errorf("Listen = %q, want default", cfg.Listen)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssokeeper.yaml")
	content := `
listen: "0.0.0.0:9090"
db_path: "/var/lib/ssokeeper/keeper.db"
endpoint:
  sso_url: "https://sso.example.com/login"
  api_base_url: "https://api.example.com"
  project_id: "proj-1"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9090" {
		t.Errorf("Listen = %q, want 0.0.0.0:9090", cfg.Listen)
	}
	if cfg.Endpoint == nil || cfg.Endpoint.SSOURL != "https://sso.example.com/login" {
		t.Errorf("Endpoint seed not parsed: %+v", cfg.Endpoint)
	}
	if cfg.Endpoint.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %q, want proj-1", cfg.Endpoint.ProjectID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "7000")
	t.Setenv("SSOKEEPER_DB", "override.db")
	t.Setenv("SSOKEEPER_ADMIN_PASSWORD", "hunter2")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "0.0.0.0:7000" {
		t.Errorf("Listen = %q, want 0.0.0.0:7000", cfg.Listen)
	}
	if cfg.DBPath != "override.db" {
		t.Errorf("DBPath = %q, want override.db", cfg.DBPath)
	}
	if cfg.AdminPassword != "hunter2" {
		t.Errorf("AdminPassword = %q, want hunter2", cfg.AdminPassword)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
