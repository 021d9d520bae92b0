package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/wazap-ai/wazap-go/pkg/wazap"
)

// DefaultBaseURL is the default API endpoint.
const DefaultBaseURL = wazap.DefaultBaseURL

// Config holds CLI configuration for wazap.
type Config struct {
	CompanyToken string
	AccountToken string

	BaseURL string
	Timeout time.Duration

	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: wazap.DefaultTimeout,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.CompanyToken == "" {
		return fmt.Errorf("company-token is required (flag, WAZAP_COMPANY_TOKEN or config file)")
	}
	if c.AccountToken == "" {
		return fmt.Errorf("account-token is required (flag, WAZAP_ACCOUNT_TOKEN or config file)")
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Masked returns a copy safe to log.
func (c Config) Masked() Config {
	if c.CompanyToken != "" {
		c.CompanyToken = "*****"
	}
	if c.AccountToken != "" {
		c.AccountToken = "*****"
	}
	return c
}

// ClientConfig converts to the library configuration.
func (c Config) ClientConfig() wazap.Config {
	return wazap.Config{
		CompanyToken: c.CompanyToken,
		AccountToken: c.AccountToken,
		BaseURL:      c.BaseURL,
		Timeout:      c.Timeout,
	}
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
