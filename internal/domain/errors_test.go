package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Is(t *testing.T) {
	err := error(&ValidationError{Issues: []Issue{
		{Field: "to", Kind: ErrInvalidPhone, Reason: "bad phone"},
		{Field: "email", Kind: ErrInvalidEmail, Reason: "bad email"},
	}})

	if !errors.Is(err, ErrInvalidPhone) || !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("errors.Is should match every issue kind")
	}
	if errors.Is(err, ErrEmptyMessage) {
		t.Errorf("errors.Is matched a kind with no issue")
	}

	wrapped := fmt.Errorf("send: %w", err)
	if !errors.Is(wrapped, ErrInvalidPhone) {
		t.Errorf("wrapped error lost its kinds")
	}

	want := "wazap: validation failed: to: bad phone; email: bad email"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 422, Message: "Phone invalid"}
	if got, want := err.Error(), "wazap: api error (status 422): Phone invalid"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransportError(t *testing.T) {
	err := &TransportError{Err: context.DeadlineExceeded}

	if err.Error() != context.DeadlineExceeded.Error() {
		t.Errorf("Error() = %q, want the underlying message", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !err.Timeout() {
		t.Error("Timeout() = false, want true for deadline exceeded")
	}
	if (&TransportError{Err: errors.New("connection refused")}).Timeout() {
		t.Error("Timeout() = true for a non-timeout error")
	}
}
