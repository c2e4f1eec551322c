package http

import (
	"github.com/MKhiriev/go-gate-keeper/internal/validation"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// resend route: the caller is identified by the body's email, not a token
	router.Group(func(r chi.Router) {
		r.Use(h.validateBody(func() validation.Payload { return &models.ResendVerificationRequest{} }))
		r.Use(h.userByEmail)
		r.Use(h.resendCooldown)
		r.Post("/api/verification/resend", h.resendVerificationMail)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.currentUser)

		r.Group(func(r chi.Router) {
			r.Use(h.verifiedOnly)
			r.Use(h.rateLimit)
			r.Get("/api/user/export", h.exportUserData)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
