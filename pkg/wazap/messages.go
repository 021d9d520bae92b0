package wazap

import (
	"context"

	"github.com/wazap-ai/wazap-go/internal/ports"
	"github.com/wazap-ai/wazap-go/internal/validation"
)

// API paths, relative to Config.BaseURL.
const (
	pathSend      = "/messages/send"
	pathSendMedia = "/messages/send-media"
	pathSendBulk  = "/messages/send-bulk"
)

// Messages is the messages resource of the API.
type Messages struct {
	transport ports.Transport
}

// Send sends a text message to a single recipient.
func (m *Messages) Send(ctx context.Context, req SendTextRequest) (*MessageResult, error) {
	validated, err := validation.SendText(req)
	if err != nil {
		return nil, err
	}

	var res MessageResult
	if err := m.transport.PostJSON(ctx, pathSend, validated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendMedia sends a message with a media attachment fetched by the service
// from MediaURL.
func (m *Messages) SendMedia(ctx context.Context, req SendMediaRequest) (*MessageResult, error) {
	validated, err := validation.SendMedia(req)
	if err != nil {
		return nil, err
	}

	var res MessageResult
	if err := m.transport.PostJSON(ctx, pathSendMedia, validated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SendBulk sends one message to between 1 and MaxBulkContacts recipients in
// a single call. Randomize defaults to true. Per-recipient outcomes are
// reported by the service in the result, not as an error.
func (m *Messages) SendBulk(ctx context.Context, req BulkRequest) (*BulkResult, error) {
	validated, err := validation.Bulk(req)
	if err != nil {
		return nil, err
	}

	var res BulkResult
	if err := m.transport.PostJSON(ctx, pathSendBulk, validated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
