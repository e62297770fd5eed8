package contact

import (
	"errors"
	"regexp"
	"strings"
)

// Validation errors. Their messages are returned to clients as-is.
var (
	ErrMissingRequired = errors.New("Name, email, and phone are required")
	ErrInvalidEmail    = errors.New("Invalid email format")
)

// emailPattern requires exactly one '@', no whitespace, and a '.' after the '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the basic local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Normalize trims surrounding whitespace from every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.EventDate = strings.TrimSpace(s.EventDate)
	s.EventType = strings.TrimSpace(s.EventType)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks the required fields and, when strictEmail is set, the
// email syntax. Call Normalize first.
func (s *Submission) Validate(strictEmail bool) error {
	if s.Name == "" || s.Email == "" || s.Phone == "" {
		return ErrMissingRequired
	}
	if strictEmail && !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}
