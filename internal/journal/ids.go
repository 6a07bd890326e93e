package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns an entry ID like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLineID appends the line suffix for the n-th line (0='a', 25='z',
// 26='aa', ...).
func FormatLineID(entryID string, n int) string {
	var suffix []byte
	for n++; n > 0; n /= 26 {
		n--
		suffix = append([]byte{byte('a' + n%26)}, suffix...)
	}
	return entryID + string(suffix)
}

// EntryGroup strips the line suffix.
// "2025-01-001b" -> "2025-01-001"
func EntryGroup(lineID string) string {
	i := len(lineID)
	for i > 0 && lineID[i-1] >= 'a' && lineID[i-1] <= 'z' {
		i--
	}
	return lineID[:i]
}

// ParseEntryID parses "2025-01-001" (with or without a line suffix).
func ParseEntryID(id string) (year, month, seq int, err error) {
	parts := strings.SplitN(EntryGroup(id), "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		nums[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid entry ID %q: %w", id, err)
		}
	}
	return nums[0], nums[1], nums[2], nil
}
