package rules

import "strings"

// specialChars is the set rejected by HasNoSpecialChars.
const specialChars = `\'^£$%&*}{@#~><|=_+¬`

// HasNoSpecialChars reports whether value contains none of the characters
// \ ' ^ £ $ % & * } { @ # ~ > < | = _ + ¬
func HasNoSpecialChars(value string) bool {
	return !strings.ContainsAny(value, specialChars)
}

// Alphabetic reports whether value consists of ASCII letters, ignoring spaces.
// At least one letter is required, so "" and "   " fail.
func Alphabetic(value string) bool {
	return allBytes(strings.ReplaceAll(value, " ", ""), isASCIILetter)
}

// AlphaNumeric reports whether value is a non-empty run of ASCII letters and digits.
func AlphaNumeric(value string) bool {
	return allBytes(value, func(c byte) bool {
		return isASCIILetter(c) || isASCIIDigit(c)
	})
}

// Digit reports whether value is a non-empty run of decimal digits 0-9.
func Digit(value string) bool {
	return allBytes(value, isASCIIDigit)
}

// Required reports whether value has content other than whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// allBytes is false for the empty string.
func allBytes(s string, fn func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !fn(s[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
