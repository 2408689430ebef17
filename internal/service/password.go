package service

import (
	"strings"
	"unicode"

	"github.com/velora-shop/velora/internal/config"
)

// validatePassword checks a candidate password against the configured
// policy, returning a human-readable message or "" when it passes.
func validatePassword(policy config.PasswordPolicyConfig, password string) string {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return "password is too short"
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case strings.ContainsRune("!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~", r):
			hasSpecial = true
		}
	}
	if policy.RequireUpper && !hasUpper {
		return "password must contain an uppercase letter"
	}
	if policy.RequireLower && !hasLower {
		return "password must contain a lowercase letter"
	}
	if policy.RequireNumber && !hasNumber {
		return "password must contain a digit"
	}
	if policy.RequireSpecial && !hasSpecial {
		return "password must contain a special character"
	}
	return ""
}
