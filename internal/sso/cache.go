package sso

import (
	"context"
	"log"
	"strconv"
	"time"
)

// ReadToken returns the cached access token if one is stored and not yet
// past its (margin-adjusted) expiry. A token found at or past expiry moves
// Valid -> Expired -> Absent in one step: the read clears both stored
// fields and reports absence.
func (m *Manager) ReadToken(ctx context.Context) (string, bool, error) {
	token, found, err := m.store.Get(ctx, keyAccessToken)
	if err != nil || !found {
		return "", false, err
	}
	raw, found, err := m.store.Get(ctx, keyTokenExpiry)
	if err != nil || !found {
		return "", false, err
	}

	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Unreadable expiry cannot prove the token is still live.
		log.Printf("⚠️ Stored token expiry %q is not a timestamp, clearing token", raw)
		if err := m.ClearToken(ctx); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	if time.Now().UnixMilli() >= expiry {
		if err := m.ClearToken(ctx); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return token, true, nil
}

// WriteToken caches the token from a login response. The stored expiry is
// the server-declared lifetime minus ExpiryMargin, as an absolute epoch
// millisecond. No floor is applied: a lifetime shorter than the margin
// yields an expiry already in the past, so the very next read clears it.
func (m *Manager) WriteToken(ctx context.Context, resp *TokenResponse) error {
	expiry := time.Now().UnixMilli() + resp.ExpiresIn*1000 - ExpiryMargin.Milliseconds()
	if err := m.store.Set(ctx, keyAccessToken, resp.AccessToken); err != nil {
		return err
	}
	return m.store.Set(ctx, keyTokenExpiry, strconv.FormatInt(expiry, 10))
}

// ClearToken unconditionally deletes the cached token and its expiry.
func (m *Manager) ClearToken(ctx context.Context) error {
	if err := m.store.Remove(ctx, keyAccessToken); err != nil {
		return err
	}
	return m.store.Remove(ctx, keyTokenExpiry)
}

// TokenStatus describes the cache without refreshing anything.
type TokenStatus struct {
	Cached    bool
	ExpiresAt time.Time
}

// Status reports whether a live token is cached and when it expires.
// It goes through ReadToken, so an expired entry is cleared on the way.
func (m *Manager) Status(ctx context.Context) (*TokenStatus, error) {
	_, ok, err := m.ReadToken(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &TokenStatus{}, nil
	}
	raw, found, err := m.store.Get(ctx, keyTokenExpiry)
	if err != nil || !found {
		return &TokenStatus{}, err
	}
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &TokenStatus{}, nil
	}
	return &TokenStatus{Cached: true, ExpiresAt: time.UnixMilli(expiry)}, nil
}
