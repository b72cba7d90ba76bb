// Package sso manages SSO credential storage and access-token lifecycle:
// a persisted expiry-aware token cache plus a login exchange that trades
// stored credentials for a fresh bearer token.
package sso

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Fixed storage keys; at most one record of each kind exists at a time.
const (
	keyAccessToken = "sso.access_token"
	keyTokenExpiry = "sso.token_expiry"
	keyCredentials = "sso.credentials"
	keyEndpoint    = "sso.endpoint"
)

// ExpiryMargin is deducted from the server-declared token lifetime so a
// token reported valid always has genuine remaining life on the server side.
const ExpiryMargin = 5 * time.Minute

// ErrNotConfigured signals that a token was requested before credentials
// and endpoint configuration were stored.
var ErrNotConfigured = errors.New("SSO is not configured: store credentials and endpoint configuration first")

// Store is the persistence boundary the manager writes through.
// It matches store.Store; redeclared here so the package has no
// dependency direction back into the storage layer.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Manager is the token lifecycle manager. All state lives in the injected
// store; the manager itself is stateless and safe to share.
//
// There is no in-flight-refresh guard: two concurrent callers that both
// miss the cache will both log in, and the last cache write wins.
type Manager struct {
	store      Store
	httpClient *http.Client
}

// NewManager creates a manager over the given store.
func NewManager(st Store) *Manager {
	return &Manager{
		store:      st,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetHTTPClient replaces the client used for the login exchange.
func (m *Manager) SetHTTPClient(c *http.Client) {
	m.httpClient = c
}

// GetValidAccessToken returns a usable access token, logging in with the
// stored credentials when the cache is empty or expired. A cached token is
// returned without any network traffic.
func (m *Manager) GetValidAccessToken(ctx context.Context) (string, error) {
	token, ok, err := m.ReadToken(ctx)
	if err != nil {
		return "", err
	}
	if ok {
		log.Printf("🎫 Using cached token %s", maskToken(token))
		return token, nil
	}

	creds, err := m.Credentials(ctx)
	if err != nil {
		return "", err
	}
	cfg, err := m.Endpoint(ctx)
	if err != nil {
		return "", err
	}
	if creds == nil || cfg == nil {
		return "", ErrNotConfigured
	}

	log.Printf("🔄 No valid cached token, logging in at %s", cfg.SSOURL)
	resp, err := m.Login(ctx, cfg.SSOURL, creds)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// IsConfigured reports whether both credentials (user id and secret) and
// endpoint configuration (SSO URL and API base URL) are on file with
// non-empty required fields. Read-only, no network access.
func (m *Manager) IsConfigured(ctx context.Context) (bool, error) {
	creds, err := m.Credentials(ctx)
	if err != nil {
		return false, err
	}
	if creds == nil || creds.UserID == "" || creds.Password == "" {
		return false, nil
	}

	cfg, err := m.Endpoint(ctx)
	if err != nil {
		return false, err
	}
	if cfg == nil || cfg.SSOURL == "" || cfg.APIBaseURL == "" {
		return false, nil
	}
	return true, nil
}

// Logout drops the cached token. Credentials and endpoint configuration
// stay on file, so the next token request logs in again.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear cached token: %w", err)
	}
	log.Printf("👋 Cached token cleared")
	return nil
}

// Reset removes everything: cached token, credentials and endpoint
// configuration.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.ClearToken(ctx); err != nil {
		return err
	}
	if err := m.store.Remove(ctx, keyCredentials); err != nil {
		return err
	}
	return m.store.Remove(ctx, keyEndpoint)
}

func maskToken(t string) string {
	if len(t) < 20 {
		return t
	}
	return "..." + t[len(t)-12:]
}
