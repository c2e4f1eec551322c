package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// rateLimit enforces the per-user sliding-window request quota.
//
// It requires a user already attached to the request context and counts
// requests by the user's GithubID. Non-exempt responses carry the standard
// draft headers RateLimit-Limit, RateLimit-Remaining, and RateLimit-Reset
// (seconds until a slot frees); the legacy X-RateLimit-* forms are never
// set. Requests over the quota are answered with HTTP 429. The guard fails
// closed: when the limiter store is unreachable no quota decision exists,
// and the request is refused with HTTP 500.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx := r.Context()
		user, ok := utils.GetUserFromContext(ctx)
		if !ok {
			log.Err(errNoUserInContext).Str("func", "*Handler.rateLimit").Send()
			h.respondError(w, r, internal(errNoUserInContext))
			return
		}

		result, err := h.limiter.Allow(ctx, user.GithubID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.rateLimit").Int64("githubId", user.GithubID).Msg("rate limit check failed")
			h.respondError(w, r, internal(err))
			return
		}

		if !result.Exempt {
			w.Header().Set("RateLimit-Limit", strconv.Itoa(h.limiter.Limit()))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(resetSeconds(result.ResetAfter)))
		}

		if !result.Allowed {
			log.Warn().Str("func", "*Handler.rateLimit").Int64("githubId", user.GithubID).Dur("reset_after", result.ResetAfter).Msg("request over quota")
			h.respondError(w, r, tooManyRequests(msgTooManyRequests))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// resetSeconds rounds the reset delay up to whole seconds so clients that
// honour the header never retry before the slot actually frees.
func resetSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
