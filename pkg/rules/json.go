package rules

import (
	"encoding/json"
	"unicode/utf8"
)

// IsJSON reports whether value is a well-formed JSON document.
// Only string, []byte and json.RawMessage are inspected; any other type,
// including decoded maps and slices, yields false.
//
// Validity is decided by the parser alone, so "null", "0", "false" and `""`
// are all valid documents. Input must also be valid UTF-8.
func IsJSON(value any) bool {
	switch v := value.(type) {
	case string:
		return validJSON([]byte(v))
	case []byte:
		return validJSON(v)
	case json.RawMessage:
		return validJSON(v)
	default:
		return false
	}
}

// json.Valid tolerates invalid UTF-8 inside strings.
func validJSON(b []byte) bool {
	return utf8.Valid(b) && json.Valid(b)
}
