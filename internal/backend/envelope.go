package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a response is neither a bare value nor
// a {"data": ...} envelope.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// unwrap normalizes the backend's response shapes: a bare array, an object
// with a "data" member, or a paginator whose "data" holds another "data".
// Objects without "data" are returned as-is.
func unwrap(raw []byte) (json.RawMessage, error) {
	body := bytes.TrimSpace(raw)
	for depth := 0; depth < 2; depth++ {
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
		}
		switch body[0] {
		case '[':
			return body, nil
		case '{':
			var env map[string]json.RawMessage
			if err := json.Unmarshal(body, &env); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
			}
			data, ok := env["data"]
			if !ok {
				return body, nil
			}
			body = bytes.TrimSpace(data)
		default:
			return nil, fmt.Errorf("%w: starts with %q", ErrUnexpectedShape, body[0])
		}
	}
	if len(body) == 0 || (body[0] != '[' && body[0] != '{') {
		return nil, fmt.Errorf("%w: nested data is not an object or array", ErrUnexpectedShape)
	}
	return body, nil
}
