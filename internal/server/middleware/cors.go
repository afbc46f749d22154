package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig lists who may call the API from a browser.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// CORS answers preflights and sets access-control headers. With no
// allowed origins it is a no-op.
func CORS(config CORSConfig) Middleware {
	if len(config.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition", "Retry-After"},
		AllowCredentials: config.AllowCredentials,
		MaxAge:           600,
	})

	return c.Handler
}
