package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLineID(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "2025-01-001a"},
		{1, "2025-01-001b"},
		{25, "2025-01-001z"},
		{26, "2025-01-001aa"},
		{27, "2025-01-001ab"},
		{52, "2025-01-001ba"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLineID("2025-01-001", tt.n), "FormatLineID(%d)", tt.n)
	}
}

func TestEntryGroup(t *testing.T) {
	tests := []struct {
		lineID string
		want   string
	}{
		{"2025-01-001a", "2025-01-001"},
		{"2025-01-001ab", "2025-01-001"},
		{"2025-01-001", "2025-01-001"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EntryGroup(tt.lineID), "EntryGroup(%q)", tt.lineID)
	}
}

func TestParseEntryID(t *testing.T) {
	year, month, seq, err := ParseEntryID("2025-03-042c")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 42, seq)

	for _, bad := range []string{"", "2025-03", "2025-xx-001", "abc"} {
		_, _, _, err := ParseEntryID(bad)
		assert.Error(t, err, "ParseEntryID(%q)", bad)
	}
}
