package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_WritesMessage(t *testing.T) {
	var out, logs bytes.Buffer
	s := NewLogSender(&out, logging.NewJSONLogger(&logs, "info"))

	err := s.Send(context.Background(), Message{To: "bob@example.com", Subject: "Reset", Body: "open http://x/reset-password?token=secret"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "To: bob@example.com")
	assert.Contains(t, out.String(), "token=secret")
	assert.Contains(t, logs.String(), `"subject":"Reset"`)
	assert.NotContains(t, logs.String(), "secret")
}
