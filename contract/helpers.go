package contract

import (
	"strconv"
	"strings"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		fail(ErrInvalidPayload, errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		fail(ErrInvalidPayload, errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				fail(ErrInvalidPayload, errMsg)
			}
		}
	}
	return raw
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to host calls quickly.
func strptr(s string) *string { return &s }
