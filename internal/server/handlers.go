// Package server exposes the token lifecycle manager over a small local
// HTTP API so clients in any language can share one token cache.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/octalbyte/ssokeeper/internal/sso"
	"github.com/octalbyte/ssokeeper/internal/version"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// HealthzHandler reports liveness and the build version.
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version.Version,
		})
	}
}

// TokenHandler returns a valid access token, logging in if needed.
func TokenHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := mgr.GetValidAccessToken(r.Context())
		if err != nil {
			if errors.Is(err, sso.ErrNotConfigured) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			var exchErr *sso.ExchangeError
			if errors.As(err, &exchErr) {
				writeError(w, http.StatusBadGateway, exchErr.Error())
				return
			}
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
	}
}

// StatusHandler reports configuration and cache state without logging in.
func StatusHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configured, err := mgr.IsConfigured(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		status, err := mgr.Status(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := map[string]interface{}{
			"configured":   configured,
			"token_cached": status.Cached,
		}
		if status.Cached {
			resp["token_expires_at"] = status.ExpiresAt.UTC().Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// PutCredentialsHandler stores SSO credentials.
func PutCredentialsHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds sso.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if creds.UserID == "" || creds.Password == "" {
			writeError(w, http.StatusBadRequest, "userid and password are required")
			return
		}
		if err := mgr.SetCredentials(r.Context(), &creds); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PutEndpointHandler stores the endpoint configuration.
func PutEndpointHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg sso.EndpointConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if cfg.SSOURL == "" || cfg.APIBaseURL == "" {
			writeError(w, http.StatusBadRequest, "sso_url and api_base_url are required")
			return
		}
		if err := mgr.SetEndpoint(r.Context(), &cfg); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetEndpointHandler returns the stored endpoint configuration.
// Credentials are never exposed over HTTP.
func GetEndpointHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := mgr.Endpoint(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if cfg == nil {
			writeError(w, http.StatusNotFound, "no endpoint configuration stored")
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// LogoutHandler clears the cached token.
func LogoutHandler(mgr *sso.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := mgr.Logout(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Cached token cleared",
		})
	}
}
