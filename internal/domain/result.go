package domain

import "encoding/json"

// MessageResult is the service response to a text or media send.
type MessageResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    MessageData `json:"data"`
}

// MessageData describes the queued message.
type MessageData struct {
	UUID      string     `json:"uuid"`
	MessageID string     `json:"messageId"`
	To        string     `json:"to"`
	Status    string     `json:"status"`
	Timestamp string     `json:"timestamp"`
	MediaInfo *MediaInfo `json:"mediaInfo,omitempty"`
}

// MediaInfo is present on media sends.
type MediaInfo struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
}

// BulkResult is the service response to a bulk send. Per-recipient outcomes
// are reported by the service in Summary, Results and Errors.
type BulkResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    BulkData `json:"data"`
}

// BulkData describes a bulk batch.
type BulkData struct {
	BatchUUID string      `json:"batchUuid"`
	Summary   BulkSummary `json:"summary"`

	// Results and Errors are passed through undecoded; their entry shape is
	// defined by the service.
	Results []json.RawMessage `json:"results"`
	Errors  []json.RawMessage `json:"errors,omitempty"`
}

// BulkSummary counts recipients by outcome.
type BulkSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
	Invalid int `json:"invalid"`
}
