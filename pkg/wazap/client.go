package wazap

import (
	"net/http"

	httpAdapter "github.com/wazap-ai/wazap-go/internal/adapters/http"
	"github.com/wazap-ai/wazap-go/pkg/log"
)

// Client is a configured connection to the Wazap API.
// Use New() to create one; it is safe for concurrent use.
type Client struct {
	config Config

	// Messages sends text, media and bulk messages.
	Messages *Messages
}

// New creates a Client. It returns ErrMissingCredentials when a token is
// empty and ErrInvalidConfig when the base URL or timeout is unusable.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := options{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	transport := httpAdapter.NewTransport(o.httpClient, httpAdapter.Config{
		BaseURL: cfg.BaseURL,
		Headers: map[string]string{
			httpAdapter.HeaderCompanyToken: cfg.CompanyToken,
			httpAdapter.HeaderAccountToken: cfg.AccountToken,
			"User-Agent":                   userAgent,
		},
		Timeout: cfg.Timeout,
	}, o.logger)

	return &Client{
		config:   cfg,
		Messages: &Messages{transport: transport},
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() Config {
	return c.config
}
