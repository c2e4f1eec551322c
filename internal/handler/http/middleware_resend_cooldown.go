package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// resendCooldown blocks a verification-mail resend while the previously
// issued verification token is still pending.
//
// It requires a user already attached to the request context. The remaining
// wait is obtained from [service.VerificationService.ResendCooldown]; a
// non-zero value is answered with HTTP 400 and a message embedding the
// remaining time, a zero value lets the request continue. Lookup failures
// yield HTTP 500.
func (h *Handler) resendCooldown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx := r.Context()
		user, ok := utils.GetUserFromContext(ctx)
		if !ok {
			log.Err(errNoUserInContext).Str("func", "*Handler.resendCooldown").Send()
			h.respondError(w, r, internal(errNoUserInContext))
			return
		}

		remaining, err := h.services.VerificationService.ResendCooldown(ctx, user.UserID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.resendCooldown").Msg("error occurred during cooldown lookup")
			h.respondError(w, r, internal(err))
			return
		}

		if remaining > 0 {
			message := fmt.Sprintf("Verification mail already sent, please try again after %s", formatRemaining(remaining))
			log.Warn().Str("func", "*Handler.resendCooldown").Int64("userId", user.UserID).Dur("remaining", remaining).Msg("resend refused, cooldown active")
			h.respondError(w, r, badRequest(message, nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// formatRemaining renders a wait duration as "M:S minutes" when the minutes
// component is non-zero and "S seconds" otherwise.
//
// M and S are the wall-clock minute and second components of the duration,
// each taken modulo 60. For waits of an hour or more the minutes therefore
// wrap around instead of accumulating. The frontend parses these exact
// strings, so the formula must not change without coordinating a release.
func formatRemaining(d time.Duration) string {
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if minutes != 0 {
		return fmt.Sprintf("%d:%d minutes", minutes, seconds)
	}
	return fmt.Sprintf("%d seconds", seconds)
}
