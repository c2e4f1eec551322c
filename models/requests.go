package models

import "github.com/MKhiriev/go-gate-keeper/internal/validation"

// ResendVerificationRequest is the JSON payload accepted by the
// verification-mail resend endpoint. Validation rules live in the struct
// tags; the body-schema middleware drives them via [Validate].
type ResendVerificationRequest struct {
	// Email is the address whose account requests another verification
	// mail. Matching against the user store is case-insensitive.
	Email string `json:"email" validate:"required,email"`
}

// Validate implements [validation.Payload] by running the tag rules of the
// struct through the shared validator instance.
func (r *ResendVerificationRequest) Validate() error {
	return validation.Struct(r)
}
