package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CanonicalShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  Status
	}{
		{"string pending", "pending", StatusPending},
		{"string approved", "approved", StatusApproved},
		{"string rejected", "rejected", StatusRejected},
		{"string with whitespace", " approved ", StatusApproved},
		{"tagged pending", map[string]any{"pending": nil}, StatusPending},
		{"tagged approved", map[string]any{"approved": nil}, StatusApproved},
		{"tagged rejected", map[string]any{"rejected": nil}, StatusRejected},
		{"status value", StatusRejected, StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnrecognizedShapes(t *testing.T) {
	t.Parallel()

	for _, input := range []any{nil, "", "unknown", 42, map[string]any{"frobbed": nil}, []string{"approved"}} {
		got, ok := Parse(input)
		assert.False(t, ok, "input %v should not parse", input)
		assert.Equal(t, StatusPending, got, "fallback must be pending for %v", input)
	}
}

func TestNormalize_FallsBackToPending(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StatusPending, Normalize("garbage"))
	assert.Equal(t, StatusApproved, Normalize(map[string]any{"approved": nil}))
}

// String inputs and their tagged-object equivalents must normalize to the
// same canonical value.
func TestNormalize_WireShapeEquivalence(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		assert.Equal(t, Normalize(string(s)), Normalize(map[string]any{string(s): nil}))
	}
}

// Exactly one predicate is true for every accepted input.
func TestPredicates_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	inputs := []any{
		"pending", "approved", "rejected",
		map[string]any{"pending": nil},
		map[string]any{"approved": nil},
		map[string]any{"rejected": nil},
	}
	for _, in := range inputs {
		trueCount := 0
		for _, p := range []bool{IsPending(in), IsApproved(in), IsRejected(in)} {
			if p {
				trueCount++
			}
		}
		assert.Equal(t, 1, trueCount, "input %v", in)
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Status
		wantOK bool
	}{
		{`"approved"`, StatusApproved, true},
		{`{"rejected":null}`, StatusRejected, true},
		{`{"pending":null}`, StatusPending, true},
		{`"bogus"`, StatusPending, false},
		{`{}`, StatusPending, false},
		{`not json`, StatusPending, false},
	}
	for _, tt := range tests {
		got, ok := ParseJSON([]byte(tt.raw))
		assert.Equal(t, tt.wantOK, ok, "raw %s", tt.raw)
		assert.Equal(t, tt.want, got, "raw %s", tt.raw)
	}
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var s Status
	require.NoError(t, s.UnmarshalJSON([]byte(`{"approved":null}`)))
	assert.Equal(t, StatusApproved, s)
}
