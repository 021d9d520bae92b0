package validation

import (
	"fmt"

	"github.com/wazap-ai/wazap-go/internal/domain"
)

// SendText validates a text message request and returns it unchanged.
func SendText(req domain.SendTextRequest) (domain.SendTextRequest, error) {
	if issues := applyRules(req, "", textRules, nil); len(issues) > 0 {
		return domain.SendTextRequest{}, &domain.ValidationError{Issues: issues}
	}
	return req, nil
}

// SendMedia validates a media message request and returns it unchanged.
func SendMedia(req domain.SendMediaRequest) (domain.SendMediaRequest, error) {
	if issues := applyRules(req, "", mediaRules, nil); len(issues) > 0 {
		return domain.SendMediaRequest{}, &domain.ValidationError{Issues: issues}
	}
	return req, nil
}

// Bulk validates a bulk request. The returned copy has Randomize set, true
// when the caller left it nil, and its own contact slice.
func Bulk(req domain.BulkRequest) (domain.BulkRequest, error) {
	var issues []domain.Issue

	if n := len(req.Contacts); n < 1 || n > domain.MaxBulkContacts {
		issues = append(issues, contactCountIssue(n))
	}

	for i, c := range req.Contacts {
		issues = validateContact(c, fmt.Sprintf("contacts[%d]", i), issues)
	}

	issues = applyRules(req, "", bulkRules, issues)

	if len(issues) > 0 {
		return domain.BulkRequest{}, &domain.ValidationError{Issues: issues}
	}

	out := domain.BulkRequest{
		Contacts:  append([]domain.Contact(nil), req.Contacts...),
		Message:   req.Message,
		Randomize: domain.Bool(req.RandomizeOrDefault()),
	}
	return out, nil
}

// validateContact dispatches on the contact variant.
func validateContact(c domain.Contact, field string, issues []domain.Issue) []domain.Issue {
	switch v := c.(type) {
	case domain.BarePhone:
		if !IsPhone(string(v)) {
			issues = append(issues, domain.Issue{Field: field, Kind: phoneCheck.kind, Reason: phoneCheck.reason})
		}
	case domain.ContactRecord:
		issues = applyRules(v, field+".", recordRules, issues)
	case *domain.ContactRecord:
		if v == nil {
			return append(issues, invalidContact(field))
		}
		issues = applyRules(*v, field+".", recordRules, issues)
	default:
		issues = append(issues, invalidContact(field))
	}
	return issues
}

func invalidContact(field string) domain.Issue {
	return domain.Issue{
		Field:  field,
		Kind:   domain.ErrInvalidContact,
		Reason: "must be a phone string or a contact record",
	}
}
