// Package comments holds the comment-board domain rules: payload
// validation, the two-tier thread grouping, and the session-ownership
// policy. Everything here is pure; persistence stays in the handlers.
package comments

import (
	"regexp"
	"strings"
)

// AnonymousName is stored when a commenter leaves the name field blank.
const AnonymousName = "Anonymous"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Input is a proposed create or edit payload, before normalization.
type Input struct {
	Name    string
	Email   string
	Message string
}

// Normalized is the validated triple ready for the store. The store owns
// id, created_at, and the session token.
type Normalized struct {
	Name    string
	Email   string
	Message string
}

// Validate trims and checks an Input. Message is required; email is
// optional but must look like local@domain.tld when present; a blank name
// becomes AnonymousName and a non-blank email is lower-cased.
func Validate(in Input) (Normalized, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return Normalized{}, &ValidationError{Field: "message", Message: "message required"}
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		if !emailPattern.MatchString(email) {
			return Normalized{}, &ValidationError{Field: "email", Message: "invalid email"}
		}
		email = strings.ToLower(email)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = AnonymousName
	}

	return Normalized{Name: name, Email: email, Message: message}, nil
}
