package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the client. Validation kinds are carried by [Issue] and
// matched through [ValidationError.Is], so errors.Is(err, ErrInvalidPhone)
// works on the error returned by any operation.
var (
	// ErrMissingCredentials is returned by the constructor when a token is empty.
	ErrMissingCredentials = errors.New("wazap: company and account tokens are required")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("wazap: invalid configuration")

	// ErrInvalidPhone marks a recipient that is not 2-15 digits without a leading zero.
	ErrInvalidPhone = errors.New("wazap: invalid phone number")

	// ErrEmptyMessage marks a required message body that is empty.
	ErrEmptyMessage = errors.New("wazap: message must not be empty")

	// ErrInvalidMediaURL marks a media URL that is not a well-formed absolute URL.
	ErrInvalidMediaURL = errors.New("wazap: invalid media url")

	// ErrInvalidEmail marks an email that is not a syntactically valid address.
	ErrInvalidEmail = errors.New("wazap: invalid email")

	// ErrInvalidContactCount marks a bulk contact list outside [1, MaxBulkContacts].
	ErrInvalidContactCount = errors.New("wazap: invalid contact count")

	// ErrInvalidContact marks a bulk contact entry that is neither a phone nor a record.
	ErrInvalidContact = errors.New("wazap: invalid contact")
)

// Issue is a single field-level validation failure.
type Issue struct {
	// Field is the JSON path of the offending value (e.g. "contacts[2].email").
	Field string

	// Kind is one of the validation sentinel errors.
	Kind error

	// Reason is a human-readable explanation.
	Reason string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Reason
}

// ValidationError is returned before any network I/O when a request fails
// local validation. It lists every violated rule.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "wazap: validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether any issue carries the target kind.
func (e *ValidationError) Is(target error) bool {
	for _, issue := range e.Issues {
		if issue.Kind == target {
			return true
		}
	}
	return false
}

// Fields returns the names of the offending fields in report order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		fields[i] = issue.Field
	}
	return fields
}

// APIError is returned when the service responds with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Message is the server supplied "message" field, or a generic
	// description when the body carried none.
	Message string

	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wazap: api error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError is returned when no response was received: DNS failures,
// refused connections, timeouts and cancelled contexts. Its message is the
// underlying error's message.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying error was a timeout.
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	if errors.As(e.Err, &t) {
		return t.Timeout()
	}
	return false
}

// DecodeError is returned when a 2xx response body is not the expected JSON.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wazap: decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
