package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is the JWT claims model carried by authenticated requests.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (iss, exp, iat,
// nbf, aud, jti) and adds the custom "id" claim holding the subject's
// GithubID, the shape the account system signs tokens with. The auth
// middleware parses incoming bearer tokens into this type.
//
// SignedString holds the compact serialized form (header.payload.signature)
// when the token was produced locally, e.g. by test helpers; tokens parsed
// from requests leave it empty.
type Token struct {
	// GithubID is the custom "id" claim: the GitHub account identifier of
	// the token's subject. A zero value means the claim was absent from the
	// verified payload.
	GithubID int64 `json:"id"`

	// RegisteredClaims provides access to the standard JWT claim set
	// as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON so it never becomes part of a claims payload.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
