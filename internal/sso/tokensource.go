package sso

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenSource adapts the manager to oauth2.TokenSource so downstream API
// clients built on x/oauth2 can be handed the manager directly. Each
// Token call goes through GetValidAccessToken; no extra caching layer.
func (m *Manager) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &managerTokenSource{ctx: ctx, mgr: m}
}

type managerTokenSource struct {
	ctx context.Context
	mgr *Manager
}

func (s *managerTokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := s.mgr.GetValidAccessToken(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}
