package middlewares

import (
	"log"
	"net/http"

	"github.com/grvbrk/tubelink-server/internal/utils"
)

type MiddlewareHandler struct {
	Logger         *log.Logger
	AllowedOrigins []string
}

func NewMiddlewareHandler(logger *log.Logger, allowedOrigins []string) *MiddlewareHandler {
	return &MiddlewareHandler{
		Logger:         logger,
		AllowedOrigins: allowedOrigins,
	}
}

func (mh *MiddlewareHandler) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && !mh.isOriginAllowed(origin) {
			mh.Logger.Printf("Origin not allowed: %s", origin)
			utils.WriteJSON(w, http.StatusForbidden, utils.Envelope{"error": "Origin not allowed"})
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (mh *MiddlewareHandler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mh.Logger.Printf("Request: %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)
	})
}

func (mh *MiddlewareHandler) Security(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

func (mh *MiddlewareHandler) isOriginAllowed(origin string) bool {
	for _, allowedOrigin := range mh.AllowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
