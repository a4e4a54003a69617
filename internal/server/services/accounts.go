// Package services contains server-side business logic. AccountService owns
// the account lifecycle: registration with email verification, password
// recovery, sessions and the profile of the signed-in account.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/auth"
	"github.com/dmitrijs2005/taskplanner/internal/server/config"
	"github.com/dmitrijs2005/taskplanner/internal/server/limiter"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/notify"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskplanner/internal/server/tokens"
)

// tokenIssueTries bounds how often a colliding verification token is redrawn.
const tokenIssueTries = 3

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfileUpdate replaces the profile of an account. An empty Password keeps
// the current one.
type ProfileUpdate struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type AccountService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	issuer                       *tokens.Issuer
	limiter                      *limiter.Limiter
	mail                         notify.Gateway
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, issuer *tokens.Issuer,
	lim *limiter.Limiter, mail notify.Gateway, cfg *config.Config, l logging.Logger) *AccountService {
	return &AccountService{
		db:                           db,
		repomanager:                  m,
		issuer:                       issuer,
		limiter:                      lim,
		mail:                         mail,
		logger:                       l.With("module", "accounts"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a disabled account and mails it a verification link. A
// pending account holding the same email whose link has expired is removed
// first, so abandoned sign-ups do not block the address forever.
func (s *AccountService) Register(ctx context.Context, in Registration) (*models.Account, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := checkProfile(in.Username, in.Email, in.FirstName, in.LastName); err != nil {
		return nil, err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Username:     strings.TrimSpace(in.Username),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		if err := s.purgeStalePending(ctx, tx, account.Email); err != nil {
			return err
		}
		if err := s.issueUniqueVerification(ctx, tx, account); err != nil {
			return err
		}
		if err := repo.Create(ctx, account); err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return fmt.Errorf("%w: username or email is already taken: %w", common.ErrorValidation, err)
			}
			return err
		}
		return s.mail.SendVerificationEmail(ctx, account.Email, *account.VerificationToken)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account registered", "account_id", account.ID)
	return account, nil
}

func (s *AccountService) purgeStalePending(ctx context.Context, tx dbx.DBTX, email string) error {
	repo := s.repomanager.Accounts(tx)

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}
	if existing.Enabled || !s.issuer.IsExpired(existing.VerificationTokenExpiry) {
		return nil
	}
	if err := repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.logger.Info(ctx, "stale pending account removed", "account_id", existing.ID)
	return nil
}

func (s *AccountService) issueUniqueVerification(ctx context.Context, tx dbx.DBTX, a *models.Account) error {
	repo := s.repomanager.Accounts(tx)

	for i := 0; i < tokenIssueTries; i++ {
		if err := s.issuer.IssueVerification(a); err != nil {
			return err
		}
		_, err := repo.FindByVerificationToken(ctx, *a.VerificationToken)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: could not issue a unique verification token", common.ErrorInternal)
}

// Verify redeems a verification token, enables the account and signs it in.
func (s *AccountService) Verify(ctx context.Context, token string) (*TokenPair, error) {
	if token == "" {
		return nil, common.ErrInvalidToken
	}

	var (
		pair    *TokenPair
		account *models.Account
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		var err error
		account, err = repo.FindByVerificationToken(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return err
		}
		if s.issuer.IsExpired(account.VerificationTokenExpiry) {
			return common.ErrInvalidToken
		}

		account.Enabled = true
		account.ClearVerification()
		if err := repo.Update(ctx, account); err != nil {
			return err
		}

		pair, err = s.generateTokenPair(ctx, account.ID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account verified", "account_id", account.ID)
	return pair, nil
}

// InitiatePasswordReset mails a reset link. Unknown addresses yield
// common.ErrorNotFound and exhausted budgets common.ErrRateLimited; callers
// facing the public should not tell the two apart.
func (s *AccountService) InitiatePasswordReset(ctx context.Context, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.FindByEmail(ctx, strings.TrimSpace(email))
		if err != nil {
			return err
		}
		if !s.limiter.TryConsume(&account.ResetAttempts, s.issuer.Now()) {
			return common.ErrRateLimited
		}
		if err := s.issuer.IssuePasswordReset(account); err != nil {
			return err
		}
		if err := repo.Update(ctx, account); err != nil {
			return err
		}
		return s.mail.SendPasswordResetEmail(ctx, account.Email, *account.ResetToken)
	})
}

// ResetPassword redeems a reset token and sets a new password. All sessions
// of the account are revoked.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return common.ErrInvalidToken
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.FindByResetToken(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return err
		}
		if s.issuer.IsExpired(account.ResetTokenExpiry) {
			return common.ErrInvalidToken
		}
		if err := checkPassword(newPassword); err != nil {
			return err
		}

		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		account.PasswordHash = hash
		account.ClearReset()
		if err := repo.Update(ctx, account); err != nil {
			return err
		}
		return s.repomanager.RefreshTokens(tx).DeleteAllForAccount(ctx, account.ID)
	})
}

// ResendVerification mails the still-valid verification token again. Once
// the token has expired the user has to register anew.
func (s *AccountService) ResendVerification(ctx context.Context, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.FindByEmail(ctx, strings.TrimSpace(email))
		if err != nil {
			return err
		}
		if account.Enabled || account.VerificationToken == nil || s.issuer.IsExpired(account.VerificationTokenExpiry) {
			return common.ErrInvalidToken
		}
		if !s.limiter.TryConsume(&account.VerificationAttempts, s.issuer.Now()) {
			return common.ErrRateLimited
		}
		if err := repo.Update(ctx, account); err != nil {
			return err
		}
		return s.mail.SendVerificationEmail(ctx, account.Email, *account.VerificationToken)
	})
}

// Login checks the credentials of a verified account and opens a session.
func (s *AccountService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	account, err := s.repomanager.Accounts(s.db).FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	if !account.Enabled {
		return nil, common.ErrAccountDisabled
	}
	return s.generateTokenPair(ctx, account.ID, s.db)
}

func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	return s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.AccountID, tx)
		return genErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *AccountService) GetProfile(ctx context.Context, actorID string) (*models.Account, error) {
	return s.repomanager.Accounts(s.db).FindByID(ctx, actorID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, actorID string, in ProfileUpdate) (*models.Account, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := checkProfile(in.Username, in.Email, in.FirstName, in.LastName); err != nil {
		return nil, err
	}
	if in.Password != "" {
		if err := checkPassword(in.Password); err != nil {
			return nil, err
		}
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	account.Username = strings.TrimSpace(in.Username)
	account.Email = in.Email
	account.FirstName = strings.TrimSpace(in.FirstName)
	account.LastName = strings.TrimSpace(in.LastName)
	if in.Password != "" {
		if account.PasswordHash, err = auth.HashPassword(in.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	if err := repo.Update(ctx, account); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: username or email is already taken: %w", common.ErrorValidation, err)
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes the account along with its curriculum, owned
// projects and sessions.
func (s *AccountService) DeleteAccount(ctx context.Context, actorID string) error {
	if err := s.repomanager.Accounts(s.db).Delete(ctx, actorID); err != nil {
		return err
	}
	s.logger.Info(ctx, "account deleted", "account_id", actorID)
	return nil
}

func (s *AccountService) generateTokenPair(ctx context.Context, accountID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(accountID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, accountID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
