package ports

import (
	"context"
	"net/http"
)

// HTTPClient abstracts HTTP operations for dependency injection.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// Transport issues one JSON request against the API base URL.
type Transport interface {
	// PostJSON encodes body, POSTs it to path and decodes a 2xx reply into out.
	// Non-2xx replies are returned as *domain.APIError and failures without a
	// reply as *domain.TransportError.
	PostJSON(ctx context.Context, path string, body, out any) error
}
