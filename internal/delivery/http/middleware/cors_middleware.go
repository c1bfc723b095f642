package middleware

import (
	"net/http"
	"strings"
)

type CORSMiddleware struct {
	allowedOrigins []string
}

// NewCORSMiddleware allows every origin when none are given
func NewCORSMiddleware(allowedOrigins ...string) *CORSMiddleware {
	return &CORSMiddleware{allowedOrigins: allowedOrigins}
}

func (m *CORSMiddleware) origin(req *http.Request) string {
	if len(m.allowedOrigins) == 0 {
		return "*"
	}
	requested := req.Header.Get("Origin")
	for _, o := range m.allowedOrigins {
		if strings.EqualFold(o, requested) {
			return requested
		}
	}
	return ""
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if origin := m.origin(req); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
