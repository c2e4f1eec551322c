package http

import (
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// currentUser returns the authenticated caller's account record as attached
// to the request context by the auth guard.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Err(errNoUserInContext).Str("func", "*Handler.currentUser").Send()
		h.respondError(w, r, internal(errNoUserInContext))
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.currentUser").Msg("error writing response")
	}
}

// exportUserData returns a fresh copy of the caller's account record.
//
// Unlike currentUser it re-reads the store instead of trusting the context
// copy, because the context snapshot was taken when the token was verified
// and may be stale by the time an export runs.
func (h *Handler) exportUserData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Err(errNoUserInContext).Str("func", "*Handler.exportUserData").Send()
		h.respondError(w, r, internal(errNoUserInContext))
		return
	}

	freshUser, err := h.services.UserService.FindUserByGithubID(ctx, user.GithubID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportUserData").Int64("githubId", user.GithubID).Msg("error re-reading user for export")
		h.respondError(w, r, newAPIError(statusFromError(err), err.Error(), err))
		return
	}

	if _, err := utils.WriteJSON(w, freshUser, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.exportUserData").Msg("error writing response")
	}
}
