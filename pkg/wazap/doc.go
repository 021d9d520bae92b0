// Package wazap is a Go client for the Wazap messaging API.
//
// It sends single text messages, messages with a media attachment, and the
// same message to up to 100 recipients in one bulk call. Requests are
// validated locally before anything goes on the wire.
//
// # Basic Usage
//
//	client, err := wazap.New(wazap.Config{
//	    CompanyToken: os.Getenv("WAZAP_COMPANY_TOKEN"),
//	    AccountToken: os.Getenv("WAZAP_ACCOUNT_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Messages.Send(ctx, wazap.SendTextRequest{
//	    To:      "5511999999999",
//	    Message: "hello",
//	})
//
// # Configuration
//
// Only the two tokens are required. BaseURL defaults to [DefaultBaseURL] and
// Timeout to [DefaultTimeout]; see [Config.SetDefaults]. The configuration is
// copied at construction and never changes afterwards, so a [Client] is safe
// for concurrent use and several independently configured clients can live
// in one process.
//
// # Errors
//
// Every operation returns one of:
//
//   - [*ValidationError] when the request breaks a local rule. No request
//     is sent. Use errors.Is with [ErrInvalidPhone], [ErrEmptyMessage],
//     [ErrInvalidMediaURL], [ErrInvalidEmail], [ErrInvalidContactCount] or
//     [ErrInvalidContact] to find out which.
//   - [*APIError] when the service answers with a non-2xx status. Message
//     holds the service's explanation.
//   - [*TransportError] when no answer arrived (DNS, refused connection,
//     timeout, cancelled context).
//
// Nothing is retried.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package wazap
