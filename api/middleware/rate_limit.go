package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/voicebite/voicebite-backend/api/responses"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	RateLimitKey(string) string
}

// VoiceRateLimitPolicy caps how often one session may invoke the voice
// pipeline, protecting the oracle quota.
type VoiceRateLimitPolicy struct {
	name   string
	window time.Duration
	limit  int
}

// NewVoiceRateLimitPolicy builds a per-session policy.
func NewVoiceRateLimitPolicy(name string, window time.Duration, limit int) VoiceRateLimitPolicy {
	return VoiceRateLimitPolicy{
		name:   strings.ToLower(strings.TrimSpace(name)),
		window: window,
		limit:  limit,
	}
}

func (p VoiceRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.limit > 0
}

func (p VoiceRateLimitPolicy) scope(sessionID string) string {
	name := p.name
	if name == "" {
		name = "voice"
	}
	return fmt.Sprintf("%s:%s", name, sessionID)
}

// VoiceRateLimit enforces the per-session counter. With no store wired
// (redis disabled) the middleware is a no-op: the endpoint still works,
// it just loses the quota guard.
func VoiceRateLimit(policy VoiceRateLimitPolicy, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sessionID := SessionIDFromContext(ctx)
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := store.RateLimitKey(policy.scope(sessionID))
			count, err := store.IncrWithTTL(ctx, key, policy.window)
			if err != nil {
				// A broken limiter must not take the endpoint down.
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "rate_limit_key", key), "rate limit store unavailable, letting request through")
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(policy.limit) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many voice commands, give it a moment"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
