package db

import (
	"path/filepath"
	"testing"

	"github.com/octalbyte/ssokeeper/internal/db/models"
)

func TestInitDB_MigratesSettings(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "keeper.db")
	database, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	s := models.Setting{Key: "sso.endpoint", Value: `{"sso_url":"https://sso.example.com"}`}
	if err := database.Create(&s).Error; err != nil {
		t.Fatalf("create setting: %v", err)
	}

	var got models.Setting
	if err := database.First(&got, "key = ?", "sso.endpoint").Error; err != nil {
		t.Fatalf("read setting back: %v", err)
	}
	if got.Value != s.Value {
		t.Fatalf("expected %q, got %q", s.Value, got.Value)
	}
}

func TestInitDB_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "keeper.db")
	database, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := database.Create(&models.Setting{Key: "sso.access_token", Value: "tok-1"}).Error; err != nil {
		t.Fatalf("create setting: %v", err)
	}

	reopened, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen db: %v", err)
	}
	var got models.Setting
	if err := reopened.First(&got, "key = ?", "sso.access_token").Error; err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if got.Value != "tok-1" {
		t.Fatalf("expected tok-1, got %q", got.Value)
	}
}
