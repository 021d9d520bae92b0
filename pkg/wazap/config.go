package wazap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wazap-ai/wazap-go/internal/domain"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.wazap.ai/external/v1"

// DefaultTimeout bounds each call when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds the client configuration.
type Config struct {
	// CompanyToken is sent as X-Company-Token. Required.
	CompanyToken string

	// AccountToken is sent as X-Account-Token. Required.
	AccountToken string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config with defaults applied and no tokens.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// SetDefaults fills unset optional fields.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the configuration. Call SetDefaults first.
func (c Config) Validate() error {
	var missing []string
	if c.CompanyToken == "" {
		missing = append(missing, "company token")
	}
	if c.AccountToken == "" {
		missing = append(missing, "account token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrMissingCredentials, strings.Join(missing, " and "))
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be an absolute URL", domain.ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
