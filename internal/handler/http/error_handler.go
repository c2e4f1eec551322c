// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// apiError is the failure descriptor every guard and handler produces.
// It travels to [Handler.respondError], the single place that shapes the
// client-visible error envelope.
type apiError struct {
	// statusCode is the HTTP status to respond with. Zero means "unset" and
	// defaults to 400 when the response is written.
	statusCode int

	// message is the human-readable failure description shown to the client.
	message string

	// extraData carries additional structured detail, e.g. the full list of
	// validation errors. Omitted from the envelope when nil.
	extraData any

	// cause is the underlying error, kept for logging only. May be nil for
	// purely client-side failures such as a missing token.
	cause error

	// stack is captured where the descriptor is built, so the envelope's
	// trace points at the guard that failed rather than at the writer.
	stack []byte
}

// Error implements the error interface so descriptors can be passed around
// and asserted on like ordinary errors in tests.
func (e *apiError) Error() string {
	return e.message
}

func newAPIError(statusCode int, message string, cause error) *apiError {
	return &apiError{
		statusCode: statusCode,
		message:    message,
		cause:      cause,
		stack:      debug.Stack(),
	}
}

func unauthenticated(message string, cause error) *apiError {
	return newAPIError(http.StatusUnauthorized, message, cause)
}

func badRequest(message string, cause error) *apiError {
	return newAPIError(http.StatusBadRequest, message, cause)
}

func unprocessable(message string, extraData any, cause error) *apiError {
	descriptor := newAPIError(http.StatusUnprocessableEntity, message, cause)
	descriptor.extraData = extraData
	return descriptor
}

func tooManyRequests(message string) *apiError {
	return newAPIError(http.StatusTooManyRequests, message, nil)
}

// internal wraps an unexpected server-side failure. The underlying message is
// surfaced to the client, matching the behaviour of the other guards' 500s.
func internal(cause error) *apiError {
	return newAPIError(http.StatusInternalServerError, cause.Error(), cause)
}

// respondError is the terminal stage of the guard chain: every failure a
// guard or handler produces ends up here. It logs the descriptor, defaults
// the status code to 400 when unset, and writes the error envelope
//
//	{"statusCode": n, "message": m, "error": {"message": m, "extraData": ...}, "stack": s}
//
// with the descriptor's status.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, apiErr *apiError) {
	log := logger.FromRequest(r)

	statusCode := apiErr.statusCode
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}

	log.Err(apiErr.cause).
		Int("status", statusCode).
		Str("message", apiErr.message).
		Msg("request rejected")

	response := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    apiErr.message,
		Error: models.ErrorBody{
			Message:   apiErr.message,
			ExtraData: apiErr.extraData,
		},
		Stack: string(apiErr.stack),
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		log.Err(err).Str("func", "*Handler.respondError").Msg("error writing error response")
	}
}
