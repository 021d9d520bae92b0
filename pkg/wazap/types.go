package wazap

import "github.com/wazap-ai/wazap-go/internal/domain"

// Request types.
type (
	// SendTextRequest is the payload of Messages.Send.
	SendTextRequest = domain.SendTextRequest

	// SendMediaRequest is the payload of Messages.SendMedia.
	SendMediaRequest = domain.SendMediaRequest

	// BulkRequest is the payload of Messages.SendBulk.
	BulkRequest = domain.BulkRequest

	// Contact is a bulk recipient: a BarePhone or a ContactRecord.
	Contact = domain.Contact

	// BarePhone is a bulk recipient given only by its phone.
	BarePhone = domain.BarePhone

	// ContactRecord is a bulk recipient with optional metadata.
	ContactRecord = domain.ContactRecord
)

// Result types. They mirror the service's JSON field for field.
type (
	MessageResult = domain.MessageResult
	MessageData   = domain.MessageData
	MediaInfo     = domain.MediaInfo
	BulkResult    = domain.BulkResult
	BulkData      = domain.BulkData
	BulkSummary   = domain.BulkSummary
)

// MaxBulkContacts is the largest contact list accepted by SendBulk.
const MaxBulkContacts = domain.MaxBulkContacts

// Phones builds a contact list of bare phones.
func Phones(phones ...string) []Contact {
	return domain.Phones(phones...)
}

// ParseContacts decodes a JSON array mixing phone strings and contact objects.
func ParseContacts(data []byte) ([]Contact, error) {
	return domain.ParseContacts(data)
}

// Bool returns a pointer to b, for BulkRequest.Randomize.
func Bool(b bool) *bool {
	return domain.Bool(b)
}
