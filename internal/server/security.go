package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to every request.
type SecurityConfig struct {
	// EnableCORS toggles cross-origin response headers.
	EnableCORS bool

	// AllowedOrigins lists the origins granted CORS access. A single
	// "*" entry matches every origin.
	AllowedOrigins []string

	// AllowedMethods lists the HTTP methods advertised to browsers.
	AllowedMethods []string

	// MaxVerifyCases bounds the corpus size a single /v1/verify
	// request may ask for.
	MaxVerifyCases int
}

// DefaultSecurityConfig returns the configuration used by New.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxVerifyCases: 1_000_000,
	}
}

// SecurityMiddleware sets security headers on every response, applies
// the CORS policy, and short-circuits OPTIONS preflight requests.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin resolves the Access-Control-Allow-Origin value for the
// request origin. A wildcard entry matches even when the request
// carries no Origin header.
func matchOrigin(allowed []string, origin string) (string, bool) {
	for _, candidate := range allowed {
		if candidate == "*" {
			return "*", true
		}
		if origin != "" && candidate == origin {
			return origin, true
		}
	}
	return "", false
}
