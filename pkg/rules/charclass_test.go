package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ruleset/pkg/rules"
)

func TestHasNoSpecialChars(t *testing.T) {
	t.Run("plain text passes", func(t *testing.T) {
		for _, s := range []string{"abc", "", "Hello World 123", "dash-and.dot", "Ünïcödé"} {
			assert.True(t, rules.HasNoSpecialChars(s), s)
		}
	})

	t.Run("each forbidden character fails", func(t *testing.T) {
		for _, c := range []string{`\`, "'", "^", "£", "$", "%", "&", "*", "}", "{", "@", "#", "~", ">", "<", "|", "=", "_", "+", "¬"} {
			assert.False(t, rules.HasNoSpecialChars("a"+c+"b"), c)
		}
	})
}

func TestAlphabetic(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Hello World", true},
		{"abc", true},
		{" a b c ", true},
		{"Hello123", false},
		{"", false},
		{"   ", false},
		{"tab\tseparated", false},
		{"héllo", false},
		{"hello!", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Alphabetic(tt.value))
		})
	}
}

func TestAlphaNumeric(t *testing.T) {
	assert.True(t, rules.AlphaNumeric("abc123"))
	assert.True(t, rules.AlphaNumeric("ABC"))
	assert.True(t, rules.AlphaNumeric("007"))
	assert.False(t, rules.AlphaNumeric(""))
	assert.False(t, rules.AlphaNumeric("abc 123"))
	assert.False(t, rules.AlphaNumeric("abc-123"))
	assert.False(t, rules.AlphaNumeric("ñ1"))
}

func TestDigit(t *testing.T) {
	assert.True(t, rules.Digit("12345"))
	assert.True(t, rules.Digit("0"))
	assert.False(t, rules.Digit("12a45"))
	assert.False(t, rules.Digit(""))
	assert.False(t, rules.Digit("-1"))
	assert.False(t, rules.Digit("1.5"))
	assert.False(t, rules.Digit(" 1"))
	assert.False(t, rules.Digit("١٢٣"))
}

func TestRequired(t *testing.T) {
	assert.True(t, rules.Required("x"))
	assert.True(t, rules.Required("  John  "))
	assert.True(t, rules.Required("0"))
	assert.False(t, rules.Required(""))
	assert.False(t, rules.Required(" \t\n "))
}
