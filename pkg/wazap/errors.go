package wazap

import "github.com/wazap-ai/wazap-go/internal/domain"

// Error types returned by Client operations.
type (
	ValidationError = domain.ValidationError
	Issue           = domain.Issue
	APIError        = domain.APIError
	TransportError  = domain.TransportError
	DecodeError     = domain.DecodeError
)

// Errors can be checked with errors.Is.
var (
	ErrMissingCredentials  = domain.ErrMissingCredentials
	ErrInvalidConfig       = domain.ErrInvalidConfig
	ErrInvalidPhone        = domain.ErrInvalidPhone
	ErrEmptyMessage        = domain.ErrEmptyMessage
	ErrInvalidMediaURL     = domain.ErrInvalidMediaURL
	ErrInvalidEmail        = domain.ErrInvalidEmail
	ErrInvalidContactCount = domain.ErrInvalidContactCount
	ErrInvalidContact      = domain.ErrInvalidContact
)
