package domain

import "time"

// ResetToken is an outstanding password-reset request.
type ResetToken struct {
	Token     string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token can no longer be redeemed at now.
func (t ResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
