package rules

import (
	"strings"
	"unicode/utf8"
)

// MinLength reports whether value holds at least n characters.
// Characters are Unicode code points counted after trimming surrounding whitespace.
// An empty (or whitespace-only) value always passes.
func MinLength(value string, n int) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	return utf8.RuneCountInString(v) >= n
}

// MaxLength reports whether value holds at most n characters.
// It follows the same trimming and empty-value policy as MinLength.
func MaxLength(value string, n int) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	return utf8.RuneCountInString(v) <= n
}

// LengthBetween is MinLength and MaxLength combined.
func LengthBetween(value string, min, max int) bool {
	return MinLength(value, min) && MaxLength(value, max)
}

// MinBytes is the byte-counting counterpart of MinLength.
// Multi-byte characters count once per encoded byte.
func MinBytes(value string, n int) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	return len(v) >= n
}

// MaxBytes is the byte-counting counterpart of MaxLength.
func MaxBytes(value string, n int) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	return len(v) <= n
}
