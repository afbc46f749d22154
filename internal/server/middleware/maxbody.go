package middleware

import (
	"net/http"
	"strconv"
)

// MaxBodySize is the default maximum request body size (1 MB).
const MaxBodySize = 1 << 20 // 1 MB

// MaxBody creates a middleware that limits the request body size.
// If maxSize is 0, uses MaxBodySize constant (1 MB). Requests that declare
// a larger Content-Length are rejected up front; others are cut off by
// http.MaxBytesReader while the handler reads.
func MaxBody(maxSize int64) Middleware {
	if maxSize <= 0 {
		maxSize = MaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if r.ContentLength > maxSize {
					WriteError(w, r, http.StatusRequestEntityTooLarge,
						"request body exceeds "+strconv.FormatInt(maxSize, 10)+" bytes")
					return
				}
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}
