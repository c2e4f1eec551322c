package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/internal/validation"
)

// validateBody builds the request-body schema guard for one payload type.
//
// newPayload constructs an empty payload; the guard decodes the JSON body
// into it, runs its validation rules, and on success attaches the parsed
// payload to the request context under [utils.PayloadCtxKey]. The raw body
// is restored so downstream stages can read it again.
//
// Undecodable JSON is answered with HTTP 400. A payload that fails its rules
// is answered with HTTP 422 where the message is the first reported field
// error and extraData carries the full list, in reporting order.
func (h *Handler) validateBody(newPayload func() validation.Payload) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.validateBody").Msg("error reading request body")
				h.respondError(w, r, badRequest("error reading request body", err))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			payload := newPayload()
			if err := json.Unmarshal(bodyBytes, payload); err != nil {
				log.Err(err).Str("func", "*Handler.validateBody").Msg("Invalid JSON was passed")
				h.respondError(w, r, badRequest("Invalid JSON was passed", err))
				return
			}

			if err := payload.Validate(); err != nil {
				fieldErrors := validation.Extract(err)
				log.Err(err).Str("func", "*Handler.validateBody").Int("errors", len(fieldErrors)).Msg("request body failed validation")
				h.respondError(w, r, unprocessable(firstErrorMessage(fieldErrors), fieldErrors, err))
				return
			}

			ctx := context.WithValue(r.Context(), utils.PayloadCtxKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// firstErrorMessage renders the leading field error as the envelope's
// top-level message, e.g. "email is required".
func firstErrorMessage(fieldErrors []validation.FieldError) string {
	if len(fieldErrors) == 0 {
		return "invalid request body"
	}

	first := fieldErrors[0]
	if first.Field == "" {
		return first.Message
	}
	return first.Field + " " + first.Message
}
