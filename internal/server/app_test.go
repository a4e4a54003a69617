package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/config"
	"github.com/dmitrijs2005/taskplanner/internal/server/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailSender_Log(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()

	var buf bytes.Buffer
	s, err := newMailSender(context.Background(), c, &buf, logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &notify.LogSender{}, s)

	require.NoError(t, s.Send(context.Background(), notify.Message{To: "a@example.com", Subject: "hi", Body: "body"}))
	assert.Contains(t, buf.String(), "a@example.com")
}

func TestNewMailSender_LogWarns(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()

	var logs bytes.Buffer
	_, err := newMailSender(context.Background(), c, &bytes.Buffer{}, logging.NewJSONLogger(&logs, "info"))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), "stderr")
}

func TestNewMailSender_SES(t *testing.T) {
	c := &config.Config{}
	c.LoadDefaults()
	c.MailDriver = "ses"
	c.SESAccessKey = "AKID"
	c.SESSecretKey = "secret"
	c.SESEndpoint = "http://localhost:4566"

	s, err := newMailSender(context.Background(), c, &bytes.Buffer{}, logging.Nop{})
	require.NoError(t, err)
	assert.IsType(t, &notify.SESSender{}, s)
}

func TestNewMailSender_Unknown(t *testing.T) {
	c := &config.Config{MailDriver: "pigeon"}

	_, err := newMailSender(context.Background(), c, &bytes.Buffer{}, logging.Nop{})
	assert.ErrorContains(t, err, "pigeon")
}
