package models

import "time"

// User represents an account entity used for authentication and authorization
// decisions in the request pipeline. Records originate in the account system
// and are read-only here: guards look them up and attach them to the request
// context, they never create or mutate them.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// GithubID is the stable external identifier assigned at GitHub sign-up.
	// It is the value carried in the JWT "id" claim and the key the rate
	// limiter counts requests by.
	GithubID int64 `json:"githubId"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the address the account was registered with.
	// Stored lower-cased; lookups normalize their input the same way.
	Email string `json:"email"`

	// IsVerified reports whether the user has confirmed their e-mail
	// address. Unverified accounts are refused by the verification guard.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
