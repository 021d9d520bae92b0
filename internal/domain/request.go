package domain

// MaxBulkContacts is the largest contact list accepted by a single bulk send.
const MaxBulkContacts = 100

// SendTextRequest is the payload of a plain text message.
type SendTextRequest struct {
	// To is the recipient phone, digits only with country code (e.g. "5511999999999").
	To string `json:"to"`

	// Message is the text body. Required.
	Message string `json:"message"`

	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Document string `json:"document,omitempty"`
}

// SendMediaRequest is the payload of a message carrying a media attachment.
type SendMediaRequest struct {
	To string `json:"to"`

	// Message is an optional caption.
	Message string `json:"message,omitempty"`

	// MediaURL is the public URL the service downloads the attachment from.
	MediaURL string `json:"mediaUrl"`
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`

	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Document string `json:"document,omitempty"`
}

// BulkRequest sends the same message to up to MaxBulkContacts recipients.
type BulkRequest struct {
	Contacts []Contact `json:"contacts"`
	Message  string    `json:"message"`

	// Randomize asks the service to shuffle delivery order. Nil means true.
	Randomize *bool `json:"randomize"`
}

// RandomizeOrDefault returns the effective randomize flag.
func (r BulkRequest) RandomizeOrDefault() bool {
	if r.Randomize == nil {
		return true
	}
	return *r.Randomize
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool {
	return &b
}
