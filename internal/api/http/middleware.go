package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jekabolt/waitlist-manager/internal/apisrv/auth"
	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
	"github.com/jekabolt/waitlist-manager/internal/middleware"
	"github.com/jekabolt/waitlist-manager/internal/ratelimit"
)

// allowRate checks a per-client quota and stamps the X-RateLimit headers.
// A blocked request is answered with 429 plus Retry-After and false is
// returned.
func allowRate(w http.ResponseWriter, r *http.Request, l *ratelimit.Limiter, scope string) bool {
	key := fmt.Sprintf("%s:%s", scope, middleware.GetClientIP(r.Context()))
	res := l.Check(key)

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

	if !res.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
		slog.Default().WarnContext(r.Context(), "rate limit exceeded",
			slog.String("key", key),
			slog.String("path", r.URL.Path),
		)
		respondError(w, r, gerr.ErrRateLimited)
		return false
	}
	return true
}

// rateLimit enforces a per-client quota before the handler runs.
func (s *Server) rateLimit(l *ratelimit.Limiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowRate(w, r, l, scope) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// withAuth rejects requests without a valid bearer token.
func (s *Server) withAuth(authServer *auth.Server) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := authServer.VerifyRequest(r); err != nil {
				respondError(w, r, gerr.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
