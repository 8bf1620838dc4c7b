package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/voicebite/voicebite-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionIDKey struct{}

// SessionID attaches the client-supplied session id to the request
// context, minting one when the header is absent so every caller gets a
// working (if short-lived) session. The id is always echoed back.
func SessionID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessID := r.Header.Get(sessionIDHeader)
			if sessID == "" {
				sessID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessID)

			ctx := context.WithValue(r.Context(), sessionIDKey{}, sessID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id set by SessionID, or empty
// when the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}
