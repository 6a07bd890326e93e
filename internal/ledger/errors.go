package ledger

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when the input cannot be aggregated at all.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError locates the offending line item. It unwraps to
// ErrMalformedInput.
type MalformedInputError struct {
	EntryIndex int
	LineIndex  int
	EntryID    string
	Reason     string
}

func (e *MalformedInputError) Error() string {
	id := e.EntryID
	if id == "" {
		id = fmt.Sprintf("#%d", e.EntryIndex)
	}
	return fmt.Sprintf("malformed input: entry %s line %d: %s", id, e.LineIndex, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}
