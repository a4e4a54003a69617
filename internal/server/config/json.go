package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/flagx"
	"github.com/dmitrijs2005/taskplanner/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so they can be written as "15m" or as nanoseconds. Fields
// missing from the file keep the value they had before loading.
type JsonConfig struct {
	EndpointAddrGRPC                  *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP                  *string         `json:"endpoint_addr_http"`
	DatabaseDSN                       *string         `json:"database_dsn"`
	SecretKey                         *string         `json:"secret_key"`
	LogLevel                          *string         `json:"log_level"`
	AccessTokenValidityDuration       *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration      *timex.Duration `json:"refresh_token_validity_duration"`
	VerificationTokenValidityDuration *timex.Duration `json:"verification_token_validity_duration"`
	ResetTokenValidityDuration        *timex.Duration `json:"reset_token_validity_duration"`
	MaxAttempts                       *int            `json:"max_attempts"`
	AttemptWindow                     *timex.Duration `json:"attempt_window"`
	RedisAddr                         *string         `json:"redis_addr"`
	ThrottleLimit                     *int            `json:"throttle_limit"`
	ThrottleWindow                    *timex.Duration `json:"throttle_window"`
	MailDriver                        *string         `json:"mail_driver"`
	MailFrom                          *string         `json:"mail_from"`
	PublicBaseURL                     *string         `json:"public_base_url"`
	SESRegion                         *string         `json:"ses_region"`
	SESAccessKey                      *string         `json:"ses_access_key"`
	SESSecretKey                      *string         `json:"ses_secret_key"`
	SESEndpoint                       *string         `json:"ses_endpoint"`
}

// parseJson loads the file named by -c / -config into config. Without the
// flag nothing happens. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.VerificationTokenValidityDuration, c.VerificationTokenValidityDuration)
	setDuration(&config.ResetTokenValidityDuration, c.ResetTokenValidityDuration)
	if c.MaxAttempts != nil {
		config.MaxAttempts = *c.MaxAttempts
	}
	setDuration(&config.AttemptWindow, c.AttemptWindow)
	setString(&config.RedisAddr, c.RedisAddr)
	if c.ThrottleLimit != nil {
		config.ThrottleLimit = *c.ThrottleLimit
	}
	setDuration(&config.ThrottleWindow, c.ThrottleWindow)
	setString(&config.MailDriver, c.MailDriver)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SESAccessKey, c.SESAccessKey)
	setString(&config.SESSecretKey, c.SESSecretKey)
	setString(&config.SESEndpoint, c.SESEndpoint)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
