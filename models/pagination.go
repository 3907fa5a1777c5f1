package models

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

type PageInfo struct {
	StartCursor string `json:"startCursor"`
	EndCursor   string `json:"endCursor"`
	HasNextPage *bool  `json:"hasNextPage,omitempty"`
}

const cursorTimeLayout = "2006-01-02 15:04:05.000000"

// EncodeCursor builds an opaque cursor from a row's creation time and id.
func EncodeCursor(createdAt time.Time, id string) string {
	cursor := fmt.Sprintf("%s|%s", createdAt.UTC().Format(cursorTimeLayout), id)
	return base64.StdEncoding.EncodeToString([]byte(cursor))
}

// DecodeCursor returns the creation time and id encoded in a cursor.
// A nil, empty or malformed cursor decodes to zero values, which list
// queries treat as "from the beginning".
func DecodeCursor(cursor *string) (time.Time, string) {
	if cursor == nil || *cursor == "" {
		return time.Time{}, ""
	}

	decoded, err := base64.StdEncoding.DecodeString(*cursor)
	if err != nil {
		return time.Time{}, ""
	}

	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, ""
	}

	createdAt, err := time.Parse(cursorTimeLayout, parts[0])
	if err != nil {
		return time.Time{}, ""
	}

	return createdAt, parts[1]
}
