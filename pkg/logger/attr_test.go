package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ruleset/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("rule and verdict", func(t *testing.T) {
		assert.Equal(t, "email", logger.Rule("email").Value.String())
		assert.True(t, logger.Verdict(true).Value.Bool())
	})

	t.Run("run id", func(t *testing.T) {
		assert.True(t, logger.RunID("").Equal(slog.Attr{}))
		assert.Equal(t, "run_id", logger.RunID("abc").Key)
	})

	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	})

	t.Run("lookup group", func(t *testing.T) {
		attr := logger.Lookup("pg", "users", "email")
		assert.Equal(t, "lookup", attr.Key)
		group := attr.Value.Group()
		assert.Len(t, group, 3)
		assert.Equal(t, "pg", group[0].Value.String())
		assert.Equal(t, "users", group[1].Value.String())
		assert.Equal(t, "email", group[2].Value.String())
	})
}
