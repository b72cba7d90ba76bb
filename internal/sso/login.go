package sso

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// ExchangeError is a non-2xx reply from the SSO endpoint. Detail carries
// whatever response body text was obtainable.
type ExchangeError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *ExchangeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("SSO login failed: %s", e.Status)
	}
	return fmt.Sprintf("SSO login failed: %s: %s", e.Status, e.Detail)
}

type loginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
	OTPType  string `json:"otp_type"`
}

// Login exchanges credentials for a fresh token at the SSO endpoint and,
// on success, writes the result into the token cache before returning it.
//
// The request is a single JSON POST with no cookies attached; redirects
// are followed. Nothing is retried.
func (m *Manager) Login(ctx context.Context, ssoURL string, creds *Credentials) (*TokenResponse, error) {
	payload := loginRequest{
		UserID:   creds.UserID,
		Password: creds.Password,
		OTP:      creds.OTP,
		OTPType:  creds.OTPType,
	}
	if payload.OTP == "" {
		payload.OTP = "NONE"
	}
	if payload.OTPType == "" {
		payload.OTPType = "PUSH"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ssoURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		if isTransportError(err) {
			return nil, fmt.Errorf("SSO login request to %s never reached the endpoint: %w "+
				"(likely causes: a proxy or cross-origin policy blocking the request, "+
				"no network connectivity, TLS interception or certificate problems, "+
				"or a firewall filtering the route)", ssoURL, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Best-effort detail: a failed body read still yields a usable error.
		detail, _ := io.ReadAll(resp.Body)
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     strings.TrimSpace(string(detail)),
		}
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to parse SSO token response: %w", err)
	}

	if err := m.WriteToken(ctx, &token); err != nil {
		return nil, err
	}
	log.Printf("✅ SSO login succeeded for %s (token lifetime %ds)", creds.UserID, token.ExpiresIn)
	return &token, nil
}

// isTransportError distinguishes "the request never reached the endpoint"
// from errors the caller triggered, such as cancelling the context.
func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
