package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/wazap-ai/wazap-go/internal/domain"
)

// phoneRegex matches 2-15 digits without a leading zero.
var phoneRegex = regexp.MustCompile(`^[1-9]\d{1,14}$`)

// validate is safe for concurrent use and caches nothing per call.
var validate = validator.New()

// check is a predicate over a single string field.
type check struct {
	kind   error
	reason string

	// optional skips the predicate for empty values.
	optional bool
	ok       func(string) bool
}

var (
	phoneCheck = check{
		kind:   domain.ErrInvalidPhone,
		reason: "must be 2-15 digits without a leading zero, e.g. 5511999999999",
		ok:     IsPhone,
	}
	messageCheck = check{
		kind:   domain.ErrEmptyMessage,
		reason: "must not be empty",
		ok:     func(s string) bool { return s != "" },
	}
	mediaURLCheck = check{
		kind:   domain.ErrInvalidMediaURL,
		reason: "must be a valid URL",
		ok:     IsURL,
	}
	emailCheck = check{
		kind:     domain.ErrInvalidEmail,
		reason:   "must be a valid email address",
		optional: true,
		ok:       IsEmail,
	}
)

// rule binds a check to a field of request type T.
type rule[T any] struct {
	field string
	get   func(T) string
	check check
}

func (r rule[T]) apply(req T, prefix string, issues []domain.Issue) []domain.Issue {
	v := r.get(req)
	if r.check.optional && v == "" {
		return issues
	}
	if r.check.ok(v) {
		return issues
	}
	return append(issues, domain.Issue{
		Field:  prefix + r.field,
		Kind:   r.check.kind,
		Reason: r.check.reason,
	})
}

func applyRules[T any](req T, prefix string, rules []rule[T], issues []domain.Issue) []domain.Issue {
	for _, r := range rules {
		issues = r.apply(req, prefix, issues)
	}
	return issues
}

var textRules = []rule[domain.SendTextRequest]{
	{"to", func(r domain.SendTextRequest) string { return r.To }, phoneCheck},
	{"message", func(r domain.SendTextRequest) string { return r.Message }, messageCheck},
	{"email", func(r domain.SendTextRequest) string { return r.Email }, emailCheck},
}

var mediaRules = []rule[domain.SendMediaRequest]{
	{"to", func(r domain.SendMediaRequest) string { return r.To }, phoneCheck},
	{"mediaUrl", func(r domain.SendMediaRequest) string { return r.MediaURL }, mediaURLCheck},
	{"email", func(r domain.SendMediaRequest) string { return r.Email }, emailCheck},
}

var recordRules = []rule[domain.ContactRecord]{
	{"phone", func(r domain.ContactRecord) string { return r.Phone }, phoneCheck},
	{"email", func(r domain.ContactRecord) string { return r.Email }, emailCheck},
}

var bulkRules = []rule[domain.BulkRequest]{
	{"message", func(r domain.BulkRequest) string { return r.Message }, messageCheck},
}

// IsPhone reports whether s is a valid recipient phone.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsURL reports whether s is a well-formed absolute URL.
func IsURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

func contactCountIssue(n int) domain.Issue {
	return domain.Issue{
		Field:  "contacts",
		Kind:   domain.ErrInvalidContactCount,
		Reason: fmt.Sprintf("must contain between 1 and %d contacts, got %d", domain.MaxBulkContacts, n),
	}
}
