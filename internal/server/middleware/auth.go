package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/autoatlas/autoatlas/internal/server/response"
	"github.com/autoatlas/autoatlas/pkg/constants"
)

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	APIKey     string
	HeaderName string
}

// DefaultAuthConfig returns default authentication configuration.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{HeaderName: constants.DefaultAuthHeader}
}

// Auth rejects requests that do not carry the configured API key. With no
// key configured every request passes.
func Auth(config AuthConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.APIKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := extractAPIKey(r, config)
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.APIKey)) != 1 {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("key_provided", apiKey != "").
					Msg("Authentication failed")
				response.Unauthorized(w, "Invalid or missing API key", "Provide a valid API key in the "+config.HeaderName+" header")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractAPIKey reads the key from the custom header or the Authorization header.
func extractAPIKey(r *http.Request, config AuthConfig) string {
	header := config.HeaderName
	if header == "" {
		header = constants.DefaultAuthHeader
	}
	if apiKey := r.Header.Get(header); apiKey != "" {
		return apiKey
	}

	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
