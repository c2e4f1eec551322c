package models

// ErrorBody is the nested "error" object of an [ErrorResponse]. It repeats
// the human-readable message and, for validation failures, carries the full
// field-error list so clients can map errors back onto form fields.
type ErrorBody struct {
	// Message is the human-readable failure description.
	Message string `json:"message"`

	// ExtraData holds additional structured failure detail (e.g. the list
	// of validation errors). Omitted when the failure carries none.
	ExtraData any `json:"extraData,omitempty"`
}

// ErrorResponse is the JSON envelope written for every failed request by the
// terminal error handler. Its shape is part of the public API contract and
// consumed by the web frontend's error interceptor.
type ErrorResponse struct {
	// StatusCode mirrors the HTTP status the response was written with.
	StatusCode int `json:"statusCode"`

	// Message is the human-readable failure description.
	Message string `json:"message"`

	// Error is the structured failure body, see [ErrorBody].
	Error ErrorBody `json:"error"`

	// Stack is the server-side stack trace captured where the failure was
	// raised. Diagnostics only; not meant for end users.
	Stack string `json:"stack"`
}

// MessageResponse carries a single confirmation message for requests that
// succeed without a richer payload (e.g. "Verification mail sent").
type MessageResponse struct {
	Message string `json:"message"`
}
