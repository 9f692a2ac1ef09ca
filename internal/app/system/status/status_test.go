package status

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{Active, true},
		{Disabled, true},
		{"ACTIVE", false},
		{"pending", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValid(tt.status); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestConstants(t *testing.T) {
	if Active != "active" {
		t.Errorf("Active = %q, want 'active'", Active)
	}
	if Disabled != "disabled" {
		t.Errorf("Disabled = %q, want 'disabled'", Disabled)
	}
}
