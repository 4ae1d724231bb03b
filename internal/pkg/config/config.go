// Package config loads the process configuration from the environment
// once at startup. Everything here is read-only after Load returns; it is
// the only state shared between requests.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	// HTTPAddr is the listen address of the standalone server entrypoint.
	HTTPAddr string

	// BusinessEmail receives the owner notice for each accepted order.
	BusinessEmail string

	// NoReplyEmail is the verified SES sender for both emails.
	NoReplyEmail string

	// SupportEmail is shown in the customer confirmation footer.
	SupportEmail string

	// TurnstileSecret is the server-side Cloudflare Turnstile key.
	TurnstileSecret string
}

func Load() *Config {
	return &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		BusinessEmail:   os.Getenv("BUSINESS_EMAIL"),
		NoReplyEmail:    os.Getenv("NO_REPLY_EMAIL"),
		SupportEmail:    os.Getenv("SUPPORT_EMAIL"),
		TurnstileSecret: os.Getenv("CLOUDFLARE_KEY"),
	}
}

// Validate reports the first missing required variable. Called from the
// entrypoints so a misconfigured deploy fails at startup, not on the
// first order.
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"BUSINESS_EMAIL", c.BusinessEmail},
		{"NO_REPLY_EMAIL", c.NoReplyEmail},
		{"SUPPORT_EMAIL", c.SupportEmail},
		{"CLOUDFLARE_KEY", c.TurnstileSecret},
	}
	for _, v := range required {
		if v.value == "" {
			return fmt.Errorf("config: %s is not set", v.name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
