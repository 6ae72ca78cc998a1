package validator

import (
	"fmt"

	"github.com/dmitrymomot/ruleset/pkg/rules"
)

func newRule(field, rule, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Rule: rule, Message: message},
	}
}

// Required fails when value is empty after trimming whitespace. "0" passes.
func Required(field, value string) Rule {
	return newRule(field, "required", "field is required", func() bool {
		return rules.Required(value)
	})
}

// MinLength counts runes of the trimmed value. Empty input passes; pair with Required.
func MinLength(field, value string, n int) Rule {
	return newRule(field, "min_length", fmt.Sprintf("must be at least %d characters long", n), func() bool {
		return rules.MinLength(value, n)
	})
}

func MaxLength(field, value string, n int) Rule {
	return newRule(field, "max_length", fmt.Sprintf("must be at most %d characters long", n), func() bool {
		return rules.MaxLength(value, n)
	})
}

func LengthBetween(field, value string, min, max int) Rule {
	return newRule(field, "length_between", fmt.Sprintf("must be between %d and %d characters long", min, max), func() bool {
		return rules.LengthBetween(value, min, max)
	})
}

func MinBytes(field, value string, n int) Rule {
	return newRule(field, "min_bytes", fmt.Sprintf("must be at least %d bytes long", n), func() bool {
		return rules.MinBytes(value, n)
	})
}

func MaxBytes(field, value string, n int) Rule {
	return newRule(field, "max_bytes", fmt.Sprintf("must be at most %d bytes long", n), func() bool {
		return rules.MaxBytes(value, n)
	})
}

// Matches fails unless value and target have the same dynamic type and value.
func Matches(field string, value, target any) Rule {
	return newRule(field, "matches", "does not match", func() bool {
		return rules.Matches(value, target)
	})
}

func NoSpecialChars(field, value string) Rule {
	return newRule(field, "no_special_chars", "must not contain special characters", func() bool {
		return rules.HasNoSpecialChars(value)
	})
}

// Alphabetic ignores spaces, so "John Smith" passes.
func Alphabetic(field, value string) Rule {
	return newRule(field, "alphabetic", "must contain only letters", func() bool {
		return rules.Alphabetic(value)
	})
}

func AlphaNumeric(field, value string) Rule {
	return newRule(field, "alphanumeric", "must contain only letters and digits", func() bool {
		return rules.AlphaNumeric(value)
	})
}

func Digit(field, value string) Rule {
	return newRule(field, "digit", "must contain only digits", func() bool {
		return rules.Digit(value)
	})
}
