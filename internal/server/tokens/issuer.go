// Package tokens issues the single-use tokens that gate account verification
// and password reset. Issuing only mutates the account; persisting it is up
// to the caller.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

// tokenBytes of entropy encode to a 40 character URL-safe string.
const tokenBytes = 30

type Issuer struct {
	verificationTTL time.Duration
	resetTTL        time.Duration
	now             func() time.Time
}

// NewIssuer returns an issuer using the given token lifetimes. A nil clock
// falls back to time.Now.
func NewIssuer(verificationTTL, resetTTL time.Duration, now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{verificationTTL: verificationTTL, resetTTL: resetTTL, now: now}
}

// Generate returns a fresh unpadded base64url token.
func (i *Issuer) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token generation: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// IssueVerification replaces any verification token on the account and
// marks it disabled until the token is redeemed.
func (i *Issuer) IssueVerification(a *models.Account) error {
	token, err := i.Generate()
	if err != nil {
		return err
	}
	expiry := i.now().Add(i.verificationTTL)
	a.VerificationToken = &token
	a.VerificationTokenExpiry = &expiry
	a.Enabled = false
	return nil
}

func (i *Issuer) IssuePasswordReset(a *models.Account) error {
	token, err := i.Generate()
	if err != nil {
		return err
	}
	expiry := i.now().Add(i.resetTTL)
	a.ResetToken = &token
	a.ResetTokenExpiry = &expiry
	return nil
}

// IsExpired reports whether a token with the given expiry can no longer be
// redeemed. A missing expiry counts as expired.
func (i *Issuer) IsExpired(expiry *time.Time) bool {
	return expiry == nil || expiry.Before(i.now())
}

func (i *Issuer) Now() time.Time {
	return i.now()
}
