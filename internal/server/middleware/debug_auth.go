package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// DebugAuthConfig holds debug endpoint authentication configuration.
type DebugAuthConfig struct {
	// Token for Bearer authentication on debug endpoints.
	Token string
	// Fallback is used when Token is empty.
	Fallback *AuthConfig
}

// DebugAuth creates a middleware that protects debug endpoints.
// If token is set, requires Bearer <token> header.
// If token is empty but fallback auth is enabled, uses Basic Auth.
// If both are empty/disabled, blocks all requests.
func DebugAuth(config *DebugAuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Token != "" {
				if checkBearerToken(r, config.Token) {
					next.ServeHTTP(w, r)
					return
				}
				WriteError(w, r, http.StatusForbidden, "debug endpoint requires a valid bearer token")
				return
			}

			if config.Fallback != nil && config.Fallback.Enabled() {
				if !config.Fallback.check(r) {
					unauthorized(w, r, Realm+"-debug")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// No authentication configured - block access
			WriteError(w, r, http.StatusForbidden, "debug authentication is not configured")
		})
	}
}

// checkBearerToken validates the Authorization: Bearer <token> header.
func checkBearerToken(r *http.Request, expectedToken string) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) == 1
}
