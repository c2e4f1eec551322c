package http

import (
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// verifiedOnly refuses requests from accounts that have not confirmed their
// e-mail address.
//
// It requires a user already attached to the request context by an upstream
// guard (auth or userByEmail). Unverified accounts are answered with HTTP 400
// "User is not verified"; a missing context user is a wiring bug and yields
// HTTP 500.
func (h *Handler) verifiedOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			log.Err(errNoUserInContext).Str("func", "*Handler.verifiedOnly").Send()
			h.respondError(w, r, internal(errNoUserInContext))
			return
		}

		if !user.IsVerified {
			log.Warn().Str("func", "*Handler.verifiedOnly").Int64("githubId", user.GithubID).Msg("unverified user refused")
			h.respondError(w, r, badRequest(msgUserNotVerified, nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
