// Package ports defines the interfaces that connect the client to its
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [HTTPClient]: executes HTTP requests; *http.Client satisfies it
//   - [Transport]: posts a JSON body to an API path and decodes the reply
//
// The public facade (pkg/wazap) depends only on these interfaces. The HTTP
// adapter (internal/adapters/http) implements Transport on top of an
// HTTPClient, which lets tests swap either layer.
package ports
