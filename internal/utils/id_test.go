package utils

import "testing"

func TestTruncateIDSafe(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"full UUID truncated", "11111111-2222-3333-4444-555555555555", "11111111"},
		{"exactly short length", "12345678", "12345678"},
		{"shorter than prefix", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateIDSafe(tt.id); got != tt.expected {
				t.Errorf("TruncateIDSafe(%q): expected %q, got %q", tt.id, tt.expected, got)
			}
		})
	}
}
