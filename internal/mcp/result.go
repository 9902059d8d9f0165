package mcp

import (
	"encoding/json"
	"fmt"
)

// Stringify renders a handler result as response text.
//
// Strings pass through, byte slices are read as text, Stringers and errors
// use their own text, scalars use fmt, and anything else is encoded as
// compact JSON. A nil result renders as the empty string.
func Stringify(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	case []byte:
		return string(r)
	case fmt.Stringer:
		return r.String()
	case error:
		return r.Error()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(r)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}
