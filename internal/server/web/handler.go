package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/gofiber/fiber/v3"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

type emailInput struct {
	Email string `json:"email"`
}

type resetInput struct {
	Token    string `json:"token" form:"token"`
	Password string `json:"password" form:"password"`
}

var resetPage = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reset password</title></head>
<body>
<h1>Choose a new password</h1>
<form method="post" action="{{.Action}}">
<input type="hidden" name="token" value="{{.Token}}">
<label>New password <input type="password" name="password" required></label>
<button type="submit">Reset password</button>
</form>
</body>
</html>
`))

// verify enables the account and signs it in. The session tokens are
// returned in the body and as cookies for browsers following the link.
func (s *Server) verify(c fiber.Ctx) error {
	tokens, err := s.accounts.Verify(c.Context(), c.Query("token"))
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			return fail(c, http.StatusBadRequest, "invalid or expired verification token")
		}
		return s.handleError(c, err)
	}

	c.Cookie(&fiber.Cookie{Name: accessTokenCookie, Value: tokens.AccessToken, Path: "/", HTTPOnly: true, SameSite: fiber.CookieSameSiteLaxMode})
	c.Cookie(&fiber.Cookie{Name: refreshTokenCookie, Value: tokens.RefreshToken, Path: "/", HTTPOnly: true, SameSite: fiber.CookieSameSiteLaxMode})

	return c.Status(http.StatusOK).JSON(map[string]string{
		"message":      "email verified",
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// resendVerification reports an unknown address, a verified account and an
// expired token the same way as an exhausted budget.
func (s *Server) resendVerification(c fiber.Ctx) error {
	err := s.accounts.ResendVerification(c.Context(), c.Query("email"))
	switch {
	case err == nil:
		return ok(c, "verification email sent")
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRateLimited):
		return fail(c, http.StatusTooManyRequests, "too many attempts or token expired")
	default:
		return s.handleError(c, err)
	}
}

func (s *Server) forgotPassword(c fiber.Ctx) error {
	var input emailInput
	if err := c.Bind().Body(&input); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	err := s.accounts.InitiatePasswordReset(c.Context(), input.Email)
	switch {
	case err == nil:
		return ok(c, "password reset email sent")
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrRateLimited):
		return fail(c, http.StatusTooManyRequests, "too many attempts")
	default:
		return s.handleError(c, err)
	}
}

// resetPasswordForm is where the emailed reset link lands. The form posts
// back to resetPassword.
func (s *Server) resetPasswordForm(c fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fail(c, http.StatusBadRequest, "missing reset token")
	}

	var buf bytes.Buffer
	err := resetPage.Execute(&buf, struct{ Action, Token string }{BasePath + "/reset-password", token})
	if err != nil {
		return s.handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (s *Server) resetPassword(c fiber.Ctx) error {
	var input resetInput
	if err := c.Bind().Body(&input); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	if err := s.accounts.ResetPassword(c.Context(), input.Token, input.Password); err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return fail(c, http.StatusBadRequest, "invalid or expired reset token")
		}
		return s.handleError(c, err)
	}
	return ok(c, "password has been reset")
}

// throttled counts requests per client address for one route.
func (s *Server) throttled(scope string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if s.throttle == nil {
			return c.Next()
		}
		if err := s.throttle.Allow(c.Context(), scope, c.IP()); err != nil {
			if errors.Is(err, common.ErrRateLimited) {
				return fail(c, http.StatusTooManyRequests, "too many attempts")
			}
			s.logger.Warn(c.Context(), "throttle unavailable", "error", err.Error())
		}
		return c.Next()
	}
}

func ok(c fiber.Ctx, message string) error {
	return c.Status(http.StatusOK).JSON(map[string]string{"message": message})
}

func fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(map[string]string{"error": message})
}

// handleError answers with the status mapped from err. Only validation
// messages reach the client verbatim.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	switch status {
	case http.StatusBadRequest:
		return fail(c, status, err.Error())
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		s.logger.Error(c.Context(), "request failed", "path", c.Path(), "error", err.Error())
	}
	return fail(c, status, http.StatusText(status))
}

func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrInvalidToken):
		return http.StatusBadRequest

	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound

	case errors.Is(err, common.ErrRateLimited):
		return http.StatusTooManyRequests

	case errors.Is(err, common.ErrVersionConflict),
		errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrAccountDisabled):
		return http.StatusUnauthorized

	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden

	case errors.Is(err, common.ErrTransport):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
