// Package common defines shared constants and sentinel errors used across
// client and server layers of the task planner. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorForbidden     = errors.New("forbidden")
	ErrVersionConflict = errors.New("version conflict")
	ErrorValidation    = errors.New("validation error")

	// Account lifecycle errors.
	ErrAccountDisabled = errors.New("account is not verified")
	ErrRateLimited     = errors.New("too many attempts")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Outbound notification failures.
	ErrTransport = errors.New("transport error")
)
