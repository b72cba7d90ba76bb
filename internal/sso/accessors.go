package sso

import (
	"context"
	"encoding/json"
	"fmt"
)

// Credentials returns the stored credentials, or nil when none are on file.
func (m *Manager) Credentials(ctx context.Context) (*Credentials, error) {
	raw, found, err := m.store.Get(ctx, keyCredentials)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse stored credentials: %w", err)
	}
	return &creds, nil
}

// SetCredentials persists credentials verbatim.
func (m *Manager) SetCredentials(ctx context.Context, creds *Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, keyCredentials, string(raw))
}

// Endpoint returns the stored endpoint configuration, or nil when none is
// on file.
func (m *Manager) Endpoint(ctx context.Context) (*EndpointConfig, error) {
	raw, found, err := m.store.Get(ctx, keyEndpoint)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var cfg EndpointConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stored endpoint configuration: %w", err)
	}
	return &cfg, nil
}

// SetEndpoint persists the endpoint configuration.
func (m *Manager) SetEndpoint(ctx context.Context, cfg *EndpointConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, keyEndpoint, string(raw))
}
