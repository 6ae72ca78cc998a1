package rules_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ruleset/pkg/rules"
)

func TestIsJSON(t *testing.T) {
	t.Run("well-formed documents", func(t *testing.T) {
		for _, s := range []string{`{"a":1}`, `[1,2,3]`, `"text"`, `42`, ` {"nested":{"ok":true}} `} {
			assert.True(t, rules.IsJSON(s), s)
		}
	})

	t.Run("falsy documents are still valid", func(t *testing.T) {
		for _, s := range []string{`null`, `0`, `false`, `""`, `[]`, `{}`} {
			assert.True(t, rules.IsJSON(s), s)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		for _, s := range []string{"not json", "", "{", `{"a":}`, `{'a':1}`, `[1,]`} {
			assert.False(t, rules.IsJSON(s), s)
		}
	})

	t.Run("malformed utf-8", func(t *testing.T) {
		assert.False(t, rules.IsJSON("\"\xff\""))
		assert.False(t, rules.IsJSON([]byte("{\"a\":\"\xc3\x28\"}")))
		assert.True(t, rules.IsJSON(`"héllo"`))
	})

	t.Run("byte inputs", func(t *testing.T) {
		assert.True(t, rules.IsJSON([]byte(`{"a":1}`)))
		assert.True(t, rules.IsJSON(json.RawMessage(`[true]`)))
		assert.False(t, rules.IsJSON([]byte(`{`)))
	})

	t.Run("structured and non-string values", func(t *testing.T) {
		assert.False(t, rules.IsJSON(map[string]any{"a": 1}))
		assert.False(t, rules.IsJSON([]string{`{"a":1}`}))
		assert.False(t, rules.IsJSON(42))
		assert.False(t, rules.IsJSON(nil))
	})
}
