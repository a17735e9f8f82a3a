package auth

import "time"

// SocialAccount is the linked identity fragment kept for a social provider.
type SocialAccount struct {
	ID Id
}

// User models the authentication entity persisted in storage. A user is
// uniquely identified by email and may be linked to at most one Facebook
// identity and one Google identity.
type User struct {
	ID               Id
	Email            Email
	Password         Password
	IsEmailValidated bool
	FacebookAccount  *SocialAccount
	GoogleAccount    *SocialAccount
}

// TokenForgotPassword is a short-lived password-reset token owned by a
// user. Consumption and expiry enforcement happen elsewhere; this layer
// only issues it.
type TokenForgotPassword struct {
	Value          string
	ExpirationDate time.Time
	UserID         Id
}
