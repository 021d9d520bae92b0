package wazap

import (
	"github.com/wazap-ai/wazap-go/internal/ports"
	"github.com/wazap-ai/wazap-go/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient ports.HTTPClient
	logger     log.Logger
}

// WithHTTPClient sets a custom HTTP client. If not provided, an *http.Client
// with Config.Timeout is used. The timeout is still applied per call through
// the request context when a custom client is set.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a logger for request tracing at debug level.
// If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
