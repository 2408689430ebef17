package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// FieldErrors carries per-field validation messages. It satisfies error so
// services can return it alongside the sentinel taxonomy.
type FieldErrors map[string]string

// Error implements error.
func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, message := range f {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for a field, keeping the first message when the
// field already failed.
func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; ok {
		return
	}
	f[field] = message
}

// OrNil returns the collected errors, or nil when everything passed.
func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

const (
	usernameMinLen    = 3
	usernameMaxLen    = 50
	productNameMaxLen = 100
	descriptionMaxLen = 2000
)

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

func validateUsername(username string) string {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < usernameMinLen || len(trimmed) > usernameMaxLen {
		return fmt.Sprintf("username must be between %d and %d characters", usernameMinLen, usernameMaxLen)
	}
	return ""
}

func validatePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" || !phonePattern.MatchString(trimmed) {
		return "phone number format is invalid"
	}
	return ""
}
