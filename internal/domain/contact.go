package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Contact is a bulk recipient. It is either a BarePhone or a ContactRecord;
// no other implementations exist.
type Contact interface {
	// ContactPhone returns the recipient phone of the entry.
	ContactPhone() string

	isContact()
}

// BarePhone is a recipient given only by its phone. It encodes as a JSON string.
type BarePhone string

// ContactPhone implements Contact.
func (p BarePhone) ContactPhone() string { return string(p) }

func (BarePhone) isContact() {}

// ContactRecord is a recipient with optional metadata. It encodes as a JSON object.
type ContactRecord struct {
	Phone    string `json:"phone"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Document string `json:"document,omitempty"`
	Code     string `json:"code,omitempty"`
}

// ContactPhone implements Contact.
func (r ContactRecord) ContactPhone() string { return r.Phone }

func (ContactRecord) isContact() {}

// Phones builds a contact list of bare phones.
func Phones(phones ...string) []Contact {
	contacts := make([]Contact, len(phones))
	for i, p := range phones {
		contacts[i] = BarePhone(p)
	}
	return contacts
}

// ParseContacts decodes a JSON array whose entries are either phone strings
// or contact objects.
func ParseContacts(data []byte) ([]Contact, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	contacts := make([]Contact, 0, len(raw))
	for i, item := range raw {
		c, err := parseContact(item)
		if err != nil {
			return nil, fmt.Errorf("contacts[%d]: %w", i, err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func parseContact(item json.RawMessage) (Contact, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 {
		return nil, ErrInvalidContact
	}

	switch trimmed[0] {
	case '"':
		var phone string
		if err := json.Unmarshal(trimmed, &phone); err != nil {
			return nil, err
		}
		return BarePhone(phone), nil
	case '{':
		var rec ContactRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, err
		}
		return rec, nil
	default:
		return nil, ErrInvalidContact
	}
}
