package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/octalbyte/ssokeeper/internal/db"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	database, err := db.InitDB(filepath.Join(t.TempDir(), "keeper.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	return NewGormStore(database)
}

func TestGet_AbsentKey(t *testing.T) {
	s := newTestStore(t)

	value, found, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected absent key, got value %q", value)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "sso.access_token", "tok-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, found, err := s.Get(ctx, "sso.access_token")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != "tok-abc" {
		t.Fatalf("expected tok-abc, got %q (found=%v)", value, found)
	}
}

func TestSet_OverwritesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "sso.token_expiry", "100"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "sso.token_expiry", "200"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, found, err := s.Get(ctx, "sso.token_expiry")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != "200" {
		t.Fatalf("expected 200, got %q (found=%v)", value, found)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "sso.credentials", `{"userid":"u"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Remove(ctx, "sso.credentials"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, found, err := s.Get(ctx, "sso.credentials")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected key to be removed")
	}

	// Removing an absent key is not an error.
	if err := s.Remove(ctx, "sso.credentials"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}
