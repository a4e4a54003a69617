package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestMailer_VerificationLink(t *testing.T) {
	s := &recordingSender{}
	m := NewMailer(s, "https://planner.example/todo-list-api/auth/")

	require.NoError(t, m.SendVerificationEmail(context.Background(), "bob@example.com", "abc-_1"))

	require.Len(t, s.sent, 1)
	assert.Equal(t, "bob@example.com", s.sent[0].To)
	assert.Contains(t, s.sent[0].Body, "https://planner.example/todo-list-api/auth/verify?token=abc-_1")
}

func TestMailer_ResetLink(t *testing.T) {
	s := &recordingSender{}
	m := NewMailer(s, "http://localhost:8080")

	require.NoError(t, m.SendPasswordResetEmail(context.Background(), "bob@example.com", "tok"))

	require.Len(t, s.sent, 1)
	assert.Contains(t, s.sent[0].Body, "http://localhost:8080/reset-password?token=tok")
	assert.Equal(t, "Reset your password", s.sent[0].Subject)
}

func TestMailer_TransportError(t *testing.T) {
	boom := errors.New("smtp down")
	m := NewMailer(&recordingSender{err: boom}, "http://x")

	err := m.SendVerificationEmail(context.Background(), "a@b.c", "t")
	assert.ErrorIs(t, err, common.ErrTransport)
	assert.ErrorIs(t, err, boom)
	assert.False(t, strings.Contains(err.Error(), "token="), "error must not leak the link")
}
