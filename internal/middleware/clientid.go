package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	clientIPKey        contextKey = "client_ip"
	clientUserAgentKey contextKey = "client_user_agent"
)

// ClientIdentifier stores the caller's IP and user agent on the request
// context so handlers can attach them to signup rows and rate limit keys.
func ClientIdentifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientIPKey, clientIP(r))
		ctx = context.WithValue(ctx, clientUserAgentKey, r.UserAgent())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP extracts the real client IP, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if cfip := r.Header.Get("CF-Connecting-IP"); cfip != "" {
		return cfip
	}
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

// GetClientIP retrieves the client IP from context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return "unknown"
}

// GetUserAgent retrieves the client user agent from context.
func GetUserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(clientUserAgentKey).(string); ok {
		return ua
	}
	return ""
}
