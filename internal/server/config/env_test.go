package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("TP_SECRET_KEY", "env-secret")
	t.Setenv("TP_RESET_TOKEN_TTL", "30m")
	t.Setenv("TP_MAX_ATTEMPTS", "5")
	t.Setenv("TP_MAIL_DRIVER", "ses")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.ResetTokenValidityDuration)
	assert.Equal(t, 5, c.MaxAttempts)
	assert.Equal(t, "ses", c.MailDriver)

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 24*time.Hour, c.VerificationTokenValidityDuration)
}

func TestParseEnv_InvalidValuePanics(t *testing.T) {
	t.Setenv("TP_MAX_ATTEMPTS", "many")

	var c Config
	require.Panics(t, func() { parseEnv(&c) })
}
