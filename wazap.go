// Package wazap provides a client for the Wazap messaging API.
//
// Example usage:
//
//	client, err := wazap.New(wazap.Config{
//	    CompanyToken: "company-token",
//	    AccountToken: "account-token",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := client.Messages.Send(ctx, wazap.SendTextRequest{
//	    To:      "5511999999999",
//	    Message: "hello",
//	})
//
// The full API lives in github.com/wazap-ai/wazap-go/pkg/wazap; this package
// re-exports its entry points.
package wazap

import (
	"github.com/wazap-ai/wazap-go/pkg/wazap"
)

// Config holds the client configuration.
// Use DefaultConfig() to get a Config with defaults applied.
type Config = wazap.Config

// Client is a configured connection to the Wazap API.
type Client = wazap.Client

// Option configures optional behavior of a Client.
type Option = wazap.Option

// Request and result types.
type (
	SendTextRequest  = wazap.SendTextRequest
	SendMediaRequest = wazap.SendMediaRequest
	BulkRequest      = wazap.BulkRequest
	Contact          = wazap.Contact
	BarePhone        = wazap.BarePhone
	ContactRecord    = wazap.ContactRecord
	MessageResult    = wazap.MessageResult
	BulkResult       = wazap.BulkResult
)

// New creates a Client. Both tokens are required.
func New(cfg Config, opts ...Option) (*Client, error) {
	return wazap.New(cfg, opts...)
}

// DefaultConfig returns a Config with default values and no tokens.
func DefaultConfig() Config {
	return wazap.DefaultConfig()
}

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = wazap.DefaultBaseURL
