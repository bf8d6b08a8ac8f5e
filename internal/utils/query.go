package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryValue returns the first non-blank value of key, trimmed. Repeated
// params fall through blanks, so ?lat=&lat=10 yields "10".
//
//	?category_id=3        → "3"
//	?category_id=%20      → ""
func QueryValue(q map[string][]string, key string) string {
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ParseID parses a positive integer path identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", raw)
	}
	return id, nil
}
