// Package models defines server-side data models persisted in the database.
package models

import "time"

// Attempts is a fixed-window counter for rate-limited account flows.
// A nil WindowStart means no attempt has been made yet.
type Attempts struct {
	Count       int
	WindowStart *time.Time
}

// Account is a registered user. An account is usable only once Enabled is
// set, which happens exactly once when its email address is verified.
//
// Token and expiry fields are always set and cleared together.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Enabled      bool

	VerificationToken       *string
	VerificationTokenExpiry *time.Time
	VerificationAttempts    Attempts

	ResetToken       *string
	ResetTokenExpiry *time.Time
	ResetAttempts    Attempts

	// Version is bumped on every update and used for optimistic locking.
	Version   int64
	CreatedAt time.Time
}

// ClearVerification drops the verification token, its expiry and the resend counter.
func (a *Account) ClearVerification() {
	a.VerificationToken = nil
	a.VerificationTokenExpiry = nil
	a.VerificationAttempts = Attempts{}
}

// ClearReset drops the reset token, its expiry and the reset counter.
func (a *Account) ClearReset() {
	a.ResetToken = nil
	a.ResetTokenExpiry = nil
	a.ResetAttempts = Attempts{}
}
