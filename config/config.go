// Package config resolves process environment into store and client settings
// for the Lambda binaries.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Credential sources accepted in CREDENTIAL_SOURCE.
const (
	CredentialsDefault = "default"
	CredentialsEnv     = "env"
	CredentialsProfile = "profile"
)

// Config holds settings read from the environment.
type Config struct {
	// TableName is the products table (PRODUCT_TABLE).
	TableName string

	// Region is the AWS region (AWS_REGION).
	Region string

	// CredentialSource selects how credentials are resolved
	// (CREDENTIAL_SOURCE): "default" uses the SDK chain, "env" uses only
	// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN,
	// "profile" uses the shared config profile named by AWS_PROFILE.
	CredentialSource string

	// Profile is the shared config profile (AWS_PROFILE).
	Profile string

	// AccessKeyID, SecretAccessKey and SessionToken are only used with
	// CredentialSource "env".
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	// Endpoint overrides the DynamoDB endpoint (DYNAMODB_ENDPOINT),
	// e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint string

	// LogLevel is one of debug, info, warn, error (LOG_LEVEL).
	LogLevel string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PRODUCT_TABLE", "Products")
	v.SetDefault("CREDENTIAL_SOURCE", CredentialsDefault)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		TableName:        v.GetString("PRODUCT_TABLE"),
		Region:           v.GetString("AWS_REGION"),
		CredentialSource: strings.ToLower(v.GetString("CREDENTIAL_SOURCE")),
		Profile:          v.GetString("AWS_PROFILE"),
		AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
		SessionToken:     v.GetString("AWS_SESSION_TOKEN"),
		Endpoint:         v.GetString("DYNAMODB_ENDPOINT"),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects settings that cannot produce a working client.
func (c *Config) validate() error {
	switch c.CredentialSource {
	case CredentialsDefault:
	case CredentialsEnv:
		if c.AccessKeyID == "" || c.SecretAccessKey == "" {
			return fmt.Errorf("config: credential source %q requires AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY", c.CredentialSource)
		}
	case CredentialsProfile:
		if c.Profile == "" {
			return fmt.Errorf("config: credential source %q requires AWS_PROFILE", c.CredentialSource)
		}
	default:
		return fmt.Errorf("config: unknown credential source %q", c.CredentialSource)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", s)
	}
}
