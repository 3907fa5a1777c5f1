package utils

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email    string
		expected bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co", true},
		{"", false},
		{"jane", false},
		{"jane@", false},
		{"@example.com", false},
		{"jane@example", false},
		{"jane doe@example.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			if got := IsValidEmail(tc.email); got != tc.expected {
				t.Fatalf("IsValidEmail(%q) = %v, expected %v", tc.email, got, tc.expected)
			}
		})
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]string{"a", "b", "a", "c", "b"})
	if len(got) != 3 {
		t.Fatalf("UniqueSlice() returned %d elements, expected 3", len(got))
	}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("UniqueSlice() order wrong: %v", got)
	}
}
