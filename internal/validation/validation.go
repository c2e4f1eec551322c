// Package validation implements the request-body schema engine used by the
// HTTP layer's body guard.
//
// Payload types declare their rules via `validate` struct tags
// (go-playground/validator); Extract converts the raw validator errors into
// the flat field/message list exposed to API clients.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. A single process-wide instance
// is used deliberately: it caches struct metadata between calls and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Payload is implemented by request-body types that know how to validate
// themselves. The body-schema middleware decodes JSON into a Payload and
// calls Validate before letting the request continue.
type Payload interface {
	Validate() error
}

// Struct runs the `validate` tag rules of v through the shared validator
// instance. The returned error, when non-nil, is a
// [validator.ValidationErrors] value suitable for [Extract].
func Struct(v any) error {
	return validate.Struct(v)
}
