package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
)

// Realm is the basic auth realm announced to clients.
const Realm = "mentalload"

// AuthConfig holds authentication configuration.
// Safe for concurrent reads and updates, so a config reload can swap
// credentials under a running server.
type AuthConfig struct {
	mu       sync.RWMutex
	enabled  bool
	user     string
	password string
}

// NewAuthConfig creates an auth configuration.
func NewAuthConfig(enabled bool, user, password string) *AuthConfig {
	return &AuthConfig{enabled: enabled, user: user, password: password}
}

// Update safely updates auth configuration.
func (c *AuthConfig) Update(enabled bool, user, password string) {
	c.mu.Lock()
	c.enabled = enabled
	c.user = user
	c.password = password
	c.mu.Unlock()
}

// Enabled reports whether basic auth is enforced.
func (c *AuthConfig) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// get returns a snapshot of auth config for safe reading.
func (c *AuthConfig) get() (enabled bool, user, password string) {
	c.mu.RLock()
	enabled = c.enabled
	user = c.user
	password = c.password
	c.mu.RUnlock()
	return
}

// check validates basic auth credentials on r.
func (c *AuthConfig) check(r *http.Request) bool {
	_, configUser, configPass := c.get()

	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}

	// Constant time comparison to prevent timing attacks
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(configUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(configPass)) == 1
	return userMatch && passMatch
}

// Auth creates a Basic Auth middleware.
// Paths in excludePaths will be excluded from authentication.
// Paths ending with "*" are treated as prefixes (e.g., "/debug/*" matches "/debug/foo").
func Auth(config *AuthConfig, excludePaths ...string) Middleware {
	exactExcludes := make(map[string]bool)
	var prefixExcludes []string

	for _, path := range excludePaths {
		if strings.HasSuffix(path, "*") {
			prefixExcludes = append(prefixExcludes, strings.TrimSuffix(path, "*"))
		} else {
			exactExcludes[path] = true
		}
	}

	excluded := func(path string) bool {
		if exactExcludes[path] {
			return true
		}
		for _, prefix := range prefixExcludes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// CORS preflights carry no credentials.
			if !config.Enabled() || excluded(r.URL.Path) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !config.check(r) {
				unauthorized(w, r, Realm)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, realm string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	WriteError(w, r, http.StatusUnauthorized, "unauthorized")
}
