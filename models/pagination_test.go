package models

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 5, 17, 10, 30, 45, 123456000, time.UTC)
	id := "2d9f2a6e-5f63-4dfd-9c4c-0f6c7a8d9b1e"

	cursor := EncodeCursor(createdAt, id)
	gotTime, gotId := DecodeCursor(&cursor)

	if !gotTime.Equal(createdAt) {
		t.Fatalf("DecodeCursor() time = %v, expected %v", gotTime, createdAt)
	}
	if gotId != id {
		t.Fatalf("DecodeCursor() id = %v, expected %v", gotId, id)
	}
}

func TestDecodeCursorMalformed(t *testing.T) {
	bad := "not base64 at all!!!"
	noSeparator := "MjAyNC0wMS0wMQ==" // base64 without the separator

	testCases := []struct {
		name   string
		cursor *string
	}{
		{"nil cursor", nil},
		{"empty cursor", new(string)},
		{"invalid base64", &bad},
		{"missing separator", &noSeparator},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotTime, gotId := DecodeCursor(tc.cursor)
			if !gotTime.IsZero() || gotId != "" {
				t.Fatalf("DecodeCursor() = (%v, %q), expected zero values", gotTime, gotId)
			}
		})
	}
}
