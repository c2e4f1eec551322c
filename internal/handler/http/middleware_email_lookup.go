package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

// userByEmail is the guard that resolves the request body's "email" field to
// a user account.
//
// It reads the JSON body, looks the address up via
// [service.UserService.FindUserByEmail] (the service normalizes case), and
// on success attaches the found user to the request context under
// [utils.UserCtxKey]. The raw body is restored afterwards so downstream
// stages can read it again.
//
// An address that matches no account is answered with HTTP 400
// "User not found". Every other failure of this guard, including store
// errors, is also answered with HTTP 400 carrying the failure's message.
func (h *Handler) userByEmail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.userByEmail").Msg("error reading request body")
			h.respondError(w, r, badRequest("error reading request body", err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		var body struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &body); err != nil {
			log.Err(err).Str("func", "*Handler.userByEmail").Msg("Invalid JSON was passed")
			h.respondError(w, r, badRequest("Invalid JSON was passed", err))
			return
		}

		ctx := r.Context()
		user, err := h.services.UserService.FindUserByEmail(ctx, body.Email)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Str("func", "*Handler.userByEmail").Str("email", body.Email).Msg("no user with given email")
				h.respondError(w, r, badRequest(msgUserNotFound, err))
				return
			}
			log.Err(err).Str("func", "*Handler.userByEmail").Msg("error occurred during user search by email")
			h.respondError(w, r, badRequest(err.Error(), err))
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
