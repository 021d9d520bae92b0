// Package domain contains the request, contact and result types exchanged with
// the Wazap messaging API, together with the error taxonomy of the client.
//
// This package is the innermost layer of the client. It has no dependencies on
// infrastructure concerns (HTTP, logging, configuration) and contains only the
// shapes of the data and the errors that describe why a call failed.
//
// # Types
//
//   - [SendTextRequest], [SendMediaRequest], [BulkRequest]: outgoing payloads
//   - [Contact]: a bulk recipient, either a [BarePhone] or a [ContactRecord]
//   - [MessageResult], [BulkResult]: payloads returned by the remote service
//
// # Errors
//
//   - [ValidationError]: a request failed local validation, no I/O happened
//   - [APIError]: the service answered with a non-2xx status
//   - [TransportError]: no response was received
package domain
