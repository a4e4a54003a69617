package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/config"
	"github.com/dmitrijs2005/taskplanner/internal/server/limiter"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type accountsFixture struct {
	svc   *AccountService
	store *store
	mail  *fakeMailer
	clock *testClock
}

func newAccountsFixture(t *testing.T) *accountsFixture {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	f := &accountsFixture{
		store: newStore(),
		mail:  &fakeMailer{},
		clock: &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	issuer := tokens.NewIssuer(cfg.VerificationTokenValidityDuration, cfg.ResetTokenValidityDuration, f.clock.Now)
	lim := limiter.New(cfg.MaxAttempts, cfg.AttemptWindow)
	f.svc = NewAccountService(newTestDB(t), f.store, issuer, lim, f.mail, cfg, logging.Nop{})
	return f
}

func registration(username, email string) Registration {
	return Registration{
		Username:  username,
		Email:     email,
		Password:  "Secret123",
		FirstName: "Alice",
		LastName:  "Liddell",
	}
}

// registerAndVerify returns the id and session of a fresh verified account.
func (f *accountsFixture) registerAndVerify(t *testing.T, username, email string) (string, *TokenPair) {
	t.Helper()
	ctx := context.Background()
	a, err := f.svc.Register(ctx, registration(username, email))
	require.NoError(t, err)
	pair, err := f.svc.Verify(ctx, f.mail.last(t).token)
	require.NoError(t, err)
	return a.ID, pair
}

func TestRegister_CreatesPendingAccount(t *testing.T) {
	f := newAccountsFixture(t)

	a, err := f.svc.Register(context.Background(), registration("alice1", "alice@example.com"))
	require.NoError(t, err)

	stored := f.store.accounts[a.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.Enabled)
	require.NotNil(t, stored.VerificationToken)
	assert.Equal(t, f.clock.now.Add(24*time.Hour), *stored.VerificationTokenExpiry)
	assert.NotEqual(t, "Secret123", stored.PasswordHash)

	m := f.mail.last(t)
	assert.Equal(t, "verify", m.kind)
	assert.Equal(t, "alice@example.com", m.address)
	assert.Equal(t, *stored.VerificationToken, m.token)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		mut  func(r *Registration)
	}{
		{"short username", func(r *Registration) { r.Username = "abc" }},
		{"bad email", func(r *Registration) { r.Email = "not-an-email" }},
		{"short first name", func(r *Registration) { r.FirstName = "Al" }},
		{"short last name", func(r *Registration) { r.LastName = "" }},
		{"short password", func(r *Registration) { r.Password = "Ab1" }},
		{"no digit", func(r *Registration) { r.Password = "Abcdefghij" }},
		{"no upper case", func(r *Registration) { r.Password = "abcdefgh1" }},
		{"symbols", func(r *Registration) { r.Password = "Abcdefg1!" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountsFixture(t)
			r := registration("alice1", "alice@example.com")
			tt.mut(&r)

			_, err := f.svc.Register(context.Background(), r)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Empty(t, f.store.accounts)
			assert.Empty(t, f.mail.sent)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, registration("alice1", "other@example.com"))
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestRegister_PurgesExpiredPendingAccount(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	first, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)

	// while the link is live the address stays taken
	_, err = f.svc.Register(ctx, registration("alice2", "alice@example.com"))
	assert.ErrorIs(t, err, common.ErrorValidation)

	f.clock.Advance(25 * time.Hour)
	second, err := f.svc.Register(ctx, registration("alice2", "alice@example.com"))
	require.NoError(t, err)

	assert.NotContains(t, f.store.accounts, first.ID)
	assert.Contains(t, f.store.accounts, second.ID)
}

func TestRegister_KeepsVerifiedAccount(t *testing.T) {
	f := newAccountsFixture(t)
	id, _ := f.registerAndVerify(t, "alice1", "alice@example.com")

	f.clock.Advance(48 * time.Hour)
	_, err := f.svc.Register(context.Background(), registration("alice2", "alice@example.com"))
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, f.store.accounts, id)
}

func TestRegister_MailFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	mail := &fakeMailer{err: errors.New("connection refused")}
	svc := NewAccountService(db, newStore(), tokens.NewIssuer(time.Hour, time.Hour, nil),
		limiter.New(3, time.Hour), mail, cfg, logging.Nop{})

	_, err = svc.Register(context.Background(), registration("alice1", "alice@example.com"))
	assert.ErrorIs(t, err, common.ErrTransport)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerify_EnablesOnceAndSignsIn(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	a, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)
	token := f.mail.last(t).token

	pair, err := f.svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Contains(t, f.store.refresh, pair.RefreshToken)

	stored := f.store.accounts[a.ID]
	assert.True(t, stored.Enabled)
	assert.Nil(t, stored.VerificationToken)
	assert.Nil(t, stored.VerificationTokenExpiry)
	assert.Zero(t, stored.VerificationAttempts.Count)

	_, err = f.svc.Verify(ctx, token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	a, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)

	f.clock.Advance(24*time.Hour + time.Minute)
	_, err = f.svc.Verify(ctx, f.mail.last(t).token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, f.store.accounts[a.ID].Enabled)

	_, err = f.svc.Verify(ctx, "")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	_, err = f.svc.Verify(ctx, "unknown")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestInitiatePasswordReset_ThreePerHour(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	f.registerAndVerify(t, "alice1", "alice@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.InitiatePasswordReset(ctx, "alice@example.com"))
		f.clock.Advance(5 * time.Minute)
	}
	assert.ErrorIs(t, f.svc.InitiatePasswordReset(ctx, "alice@example.com"), common.ErrRateLimited)
	assert.Equal(t, "reset", f.mail.last(t).kind)

	f.clock.Advance(time.Hour)
	require.NoError(t, f.svc.InitiatePasswordReset(ctx, "alice@example.com"))
}

func TestInitiatePasswordReset_UnknownEmail(t *testing.T) {
	f := newAccountsFixture(t)

	err := f.svc.InitiatePasswordReset(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, f.mail.sent)
}

func TestResetPassword(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	id, session := f.registerAndVerify(t, "alice1", "alice@example.com")

	require.NoError(t, f.svc.InitiatePasswordReset(ctx, "alice@example.com"))
	token := f.mail.last(t).token

	assert.ErrorIs(t, f.svc.ResetPassword(ctx, token, "weak"), common.ErrorValidation)
	require.NoError(t, f.svc.ResetPassword(ctx, token, "NewSecret42"))

	stored := f.store.accounts[id]
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.ResetTokenExpiry)
	assert.Zero(t, stored.ResetAttempts.Count)
	assert.NotContains(t, f.store.refresh, session.RefreshToken)

	_, err := f.svc.Login(ctx, "alice1", "Secret123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = f.svc.Login(ctx, "alice1", "NewSecret42")
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.ResetPassword(ctx, token, "NewSecret43"), common.ErrInvalidToken)
}

func TestResetPassword_Expired(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	f.registerAndVerify(t, "alice1", "alice@example.com")

	require.NoError(t, f.svc.InitiatePasswordReset(ctx, "alice@example.com"))
	f.clock.Advance(time.Hour + time.Second)

	assert.ErrorIs(t, f.svc.ResetPassword(ctx, f.mail.last(t).token, "NewSecret42"), common.ErrInvalidToken)
	assert.ErrorIs(t, f.svc.ResetPassword(ctx, "", "NewSecret42"), common.ErrInvalidToken)
}

func TestResendVerification(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)
	original := f.mail.last(t).token

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.ResendVerification(ctx, "alice@example.com"))
		assert.Equal(t, original, f.mail.last(t).token, "resend must reuse the token")
	}
	assert.ErrorIs(t, f.svc.ResendVerification(ctx, "alice@example.com"), common.ErrRateLimited)

	assert.ErrorIs(t, f.svc.ResendVerification(ctx, "ghost@example.com"), common.ErrorNotFound)

	f.clock.Advance(25 * time.Hour)
	assert.ErrorIs(t, f.svc.ResendVerification(ctx, "alice@example.com"), common.ErrInvalidToken)
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	f := newAccountsFixture(t)
	f.registerAndVerify(t, "alice1", "alice@example.com")

	err := f.svc.ResendVerification(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, registration("alice1", "alice@example.com"))
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "alice1", "Secret123")
	assert.ErrorIs(t, err, common.ErrAccountDisabled)

	_, err = f.svc.Verify(ctx, f.mail.last(t).token)
	require.NoError(t, err)

	pair, err := f.svc.Login(ctx, "alice1", "Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)

	_, err = f.svc.Login(ctx, "alice1", "Wrong1234")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = f.svc.Login(ctx, "nobody", "Secret123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshTokenAndLogout(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	_, session := f.registerAndVerify(t, "alice1", "alice@example.com")

	rotated, err := f.svc.RefreshToken(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)
	assert.NotContains(t, f.store.refresh, session.RefreshToken)

	_, err = f.svc.RefreshToken(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	require.NoError(t, f.svc.Logout(ctx, rotated.RefreshToken))
	assert.Empty(t, f.store.refresh)
}

func TestRefreshToken_Expired(t *testing.T) {
	f := newAccountsFixture(t)
	f.store.refresh["old"] = &models.RefreshToken{AccountID: "acc", Token: "old", Expires: time.Now().Add(-time.Minute)}

	_, err := f.svc.RefreshToken(context.Background(), "old")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestUpdateProfile(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	id, _ := f.registerAndVerify(t, "alice1", "alice@example.com")
	f.registerAndVerify(t, "bobby1", "bob@example.com")

	a, err := f.svc.UpdateProfile(ctx, id, ProfileUpdate{
		Username: "alice_l", Email: "liddell@example.com", FirstName: "Alice", LastName: "Liddell",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice_l", a.Username)

	_, err = f.svc.Login(ctx, "alice_l", "Secret123")
	require.NoError(t, err, "empty password keeps the old one")

	_, err = f.svc.UpdateProfile(ctx, id, ProfileUpdate{
		Username: "bobby1", Email: "liddell@example.com", FirstName: "Alice", LastName: "Liddell",
	})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.UpdateProfile(ctx, id, ProfileUpdate{
		Username: "alice_l", Email: "liddell@example.com", FirstName: "Alice", LastName: "Liddell", Password: "weak",
	})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestGetProfileAndDelete(t *testing.T) {
	f := newAccountsFixture(t)
	ctx := context.Background()
	id, _ := f.registerAndVerify(t, "alice1", "alice@example.com")

	a, err := f.svc.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", a.Email)

	require.NoError(t, f.svc.DeleteAccount(ctx, id))
	_, err = f.svc.GetProfile(ctx, id)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, f.svc.DeleteAccount(ctx, id), common.ErrorNotFound)
}
