package models

import "time"

// VerificationToken represents a pending e-mail verification entry keyed by
// the owning user. A row exists while a verification mail is "in flight";
// ExpiresAt doubles as the resend cooldown boundary: while it lies in the
// future, another mail must not be requested for the same account.
//
// Like User, the record is owned by the account system and read-only here.
type VerificationToken struct {
	// TokenID is the internal unique identifier of the record.
	// Persistence-layer only, never serialized.
	TokenID int64 `json:"-"`

	// UserID references the account the verification mail was sent to.
	UserID int64 `json:"userId"`

	// Token is the opaque secret embedded in the verification link.
	// Never serialized; the pipeline only inspects expiry, not the value.
	Token string `json:"-"`

	// ExpiresAt is the moment the pending verification (and with it the
	// resend cooldown) runs out.
	ExpiresAt time.Time `json:"expiresAt"`

	// CreatedAt is the timestamp the verification mail was issued.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the VerificationToken model.
func (t VerificationToken) TableName() string {
	return "verification_tokens"
}
