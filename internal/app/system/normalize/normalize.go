// Package normalize holds the canonical string normalization helpers.
// Use these instead of ad hoc ToLower/TrimSpace calls so stored values
// stay comparable.
package normalize

import "strings"

// Email trims whitespace and lowercases. Apply before storing or
// comparing email addresses.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims whitespace only; display names keep their case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status trims whitespace and lowercases.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role trims whitespace and lowercases.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
