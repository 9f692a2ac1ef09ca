// Package status defines the account status values stored on admin users.
// Plain strings rather than a named type, so they compare directly in
// MongoDB queries.
package status

const (
	Active   = "active"
	Disabled = "disabled"
)

// IsValid reports whether s is a recognized status value.
func IsValid(s string) bool {
	return s == Active || s == Disabled
}
