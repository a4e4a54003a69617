package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAccounts struct {
	verifyToken string
	verifyErr   error
	resendEmail string
	resendErr   error
	forgotEmail string
	forgotErr   error
	resetToken  string
	resetPass   string
	resetErr    error
}

func (m *mockAccounts) Verify(_ context.Context, token string) (*services.TokenPair, error) {
	m.verifyToken = token
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	return &services.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (m *mockAccounts) ResendVerification(_ context.Context, email string) error {
	m.resendEmail = email
	return m.resendErr
}

func (m *mockAccounts) InitiatePasswordReset(_ context.Context, email string) error {
	m.forgotEmail = email
	return m.forgotErr
}

func (m *mockAccounts) ResetPassword(_ context.Context, token, password string) error {
	m.resetToken, m.resetPass = token, password
	return m.resetErr
}

type mockThrottle struct {
	err  error
	keys []string
}

func (m *mockThrottle) Allow(_ context.Context, scope, key string) error {
	m.keys = append(m.keys, scope)
	return m.err
}

func do(t *testing.T, s *Server, method, target, body string) (*http.Response, map[string]string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func newTestServer(accounts *mockAccounts, th Throttle) *Server {
	return NewServer(":0", logging.Nop{}, accounts, th)
}

func TestVerify_Success(t *testing.T) {
	m := &mockAccounts{}
	s := newTestServer(m, nil)

	resp, body := do(t, s, http.MethodGet, BasePath+"/verify?token=abc", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", m.verifyToken)
	assert.Equal(t, "access", body["accessToken"])
	assert.Equal(t, "refresh", body["refreshToken"])

	names := map[string]bool{}
	for _, c := range resp.Cookies() {
		names[c.Name] = c.HttpOnly
	}
	assert.True(t, names[accessTokenCookie])
	assert.True(t, names[refreshTokenCookie])
}

func TestVerify_InvalidToken(t *testing.T) {
	m := &mockAccounts{verifyErr: common.ErrInvalidToken}
	s := newTestServer(m, nil)

	resp, body := do(t, s, http.MethodGet, BasePath+"/verify?token=abc", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body["error"], "abc")
	assert.Empty(t, resp.Cookies())
}

func TestResendVerification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"sent", nil, http.StatusOK},
		{"unknown email", common.ErrorNotFound, http.StatusTooManyRequests},
		{"expired token", common.ErrInvalidToken, http.StatusTooManyRequests},
		{"limited", common.ErrRateLimited, http.StatusTooManyRequests},
		{"mail down", fmt.Errorf("%w: ses", common.ErrTransport), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockAccounts{resendErr: tt.err}
			s := newTestServer(m, nil)

			resp, _ := do(t, s, http.MethodGet, BasePath+"/resend-verification-token?email=a%40example.com", "")

			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Equal(t, "a@example.com", m.resendEmail)
		})
	}
}

func TestForgotPassword_UnknownLooksLikeLimited(t *testing.T) {
	unknown := newTestServer(&mockAccounts{forgotErr: common.ErrorNotFound}, nil)
	limited := newTestServer(&mockAccounts{forgotErr: common.ErrRateLimited}, nil)

	r1, b1 := do(t, unknown, http.MethodPost, BasePath+"/forgot-password", `{"email":"x@example.com"}`)
	r2, b2 := do(t, limited, http.MethodPost, BasePath+"/forgot-password", `{"email":"a@example.com"}`)

	assert.Equal(t, http.StatusTooManyRequests, r1.StatusCode)
	assert.Equal(t, r1.StatusCode, r2.StatusCode)
	assert.Equal(t, b1, b2)
}

func TestForgotPassword_Success(t *testing.T) {
	m := &mockAccounts{}
	s := newTestServer(m, nil)

	resp, body := do(t, s, http.MethodPost, BasePath+"/forgot-password", `{"email":"a@example.com"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@example.com", m.forgotEmail)
	assert.NotEmpty(t, body["message"])
}

func TestForgotPassword_BadBody(t *testing.T) {
	s := newTestServer(&mockAccounts{}, nil)

	resp, body := do(t, s, http.MethodPost, BasePath+"/forgot-password", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"reset", nil, http.StatusOK},
		{"invalid token", common.ErrInvalidToken, http.StatusBadRequest},
		{"weak password", fmt.Errorf("%w: password is too short", common.ErrorValidation), http.StatusBadRequest},
		{"db down", errors.New("db error: boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockAccounts{resetErr: tt.err}
			s := newTestServer(m, nil)

			resp, body := do(t, s, http.MethodPost, BasePath+"/reset-password", `{"token":"tok","password":"Secret123"}`)

			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Equal(t, "tok", m.resetToken)
			assert.Equal(t, "Secret123", m.resetPass)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, body["error"], "boom")
			}
		})
	}
}

func TestThrottle_Limited(t *testing.T) {
	m := &mockAccounts{}
	th := &mockThrottle{err: common.ErrRateLimited}
	s := newTestServer(m, th)

	resp, _ := do(t, s, http.MethodGet, BasePath+"/verify?token=abc", "")

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Empty(t, m.verifyToken)
	assert.Equal(t, []string{"verify"}, th.keys)
}

func TestThrottle_FailsOpen(t *testing.T) {
	m := &mockAccounts{}
	th := &mockThrottle{err: fmt.Errorf("%w: redis down", common.ErrTransport)}
	s := newTestServer(m, th)

	resp, _ := do(t, s, http.MethodGet, BasePath+"/verify?token=abc", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", m.verifyToken)
}

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{common.ErrorValidation, http.StatusBadRequest},
		{common.ErrorNotFound, http.StatusNotFound},
		{common.ErrRateLimited, http.StatusTooManyRequests},
		{common.ErrVersionConflict, http.StatusConflict},
		{common.ErrAccountDisabled, http.StatusUnauthorized},
		{common.ErrorForbidden, http.StatusForbidden},
		{common.ErrTransport, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapErrorToStatus(tt.err), "%v", tt.err)
	}
}
