// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and the guard middleware chain
// of the REST API: JWT authentication, user lookup by e-mail, verification
// gating, mail-resend cooldown, request-body schema validation, and per-user
// rate limiting. Cross-cutting concerns such as request tracing, access
// logging, and response compression are handled in this package too. Every
// guard failure is funnelled into a single terminal error writer that shapes
// the client-visible error envelope.
package http
