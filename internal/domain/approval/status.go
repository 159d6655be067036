package approval

// Package approval contains the agent approval lifecycle status and its
// wire-shape normalization. The remote actor reports status either as a bare
// string ("approved") or as a single-key tagged object ({"approved": null});
// both shapes normalize to the same canonical Status.

import (
	"encoding/json"
	"strings"
)

// Status is the admin-controlled lifecycle state of an agent registration.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three canonical variants.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Parse converts a decoded wire value into a canonical Status.
// Accepted shapes: a string matching a variant name, or a map carrying
// exactly one of the variant names as a key. The second return value is
// false when the input matches neither shape; callers at the wire boundary
// should log that case rather than mask it.
func Parse(v any) (Status, bool) {
	switch val := v.(type) {
	case Status:
		if val.Valid() {
			return val, true
		}
	case string:
		s := Status(strings.TrimSpace(val))
		if s.Valid() {
			return s, true
		}
	case map[string]any:
		for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
			if _, ok := val[string(s)]; ok {
				return s, true
			}
		}
	}
	return StatusPending, false
}

// Normalize converts a decoded wire value into a canonical Status, falling
// back to StatusPending for unrecognized input. The fallback keeps gate
// behavior fail-closed: an unknown status never grants dashboard access.
func Normalize(v any) Status {
	s, _ := Parse(v)
	return s
}

// ParseJSON decodes raw JSON into a canonical Status. It tolerates both the
// string form and the tagged-object form.
func ParseJSON(raw []byte) (Status, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return StatusPending, false
	}
	return Parse(v)
}

// UnmarshalJSON implements json.Unmarshaler with the same shape tolerance
// as ParseJSON, so Status fields decode correctly from either wire form.
func (s *Status) UnmarshalJSON(raw []byte) error {
	parsed, _ := ParseJSON(raw)
	*s = parsed
	return nil
}

// IsPending reports whether v normalizes to the pending variant.
func IsPending(v any) bool { return Normalize(v) == StatusPending }

// IsApproved reports whether v normalizes to the approved variant.
func IsApproved(v any) bool { return Normalize(v) == StatusApproved }

// IsRejected reports whether v normalizes to the rejected variant.
func IsRejected(v any) bool { return Normalize(v) == StatusRejected }
