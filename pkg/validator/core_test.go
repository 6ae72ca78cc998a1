package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "John"),
			validator.Alphabetic("name", "John Smith"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", "  "),
			validator.Email("email", "not-an-email"),
			validator.Digit("zip", "12a45"),
			validator.MaxLength("name", "Jo", 10),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"email", "zip"}, verrs.Fields())
		assert.Equal(t, "required", verrs[0].Rule)
		assert.Equal(t, "email", verrs[1].Rule)
	})

	t.Run("rule without check is an error", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.ErrorIs(t, err, validator.ErrEmptyRule)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestApplyContext(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("backend down")

	calls := 0
	failing := validator.Rule{
		Lookup: func(context.Context) (bool, error) { return false, backendErr },
		Error:  validator.ValidationError{Field: "email", Rule: "unique"},
	}
	counting := validator.Rule{
		Check: func() bool { calls++; return false },
		Error: validator.ValidationError{Field: "name"},
	}

	t.Run("lookup error stops evaluation", func(t *testing.T) {
		err := validator.ApplyContext(ctx, failing, counting)
		require.ErrorIs(t, err, backendErr)
		assert.False(t, validator.IsValidationError(err))
		assert.Zero(t, calls)
	})

	t.Run("checks before the lookup still run", func(t *testing.T) {
		err := validator.ApplyContext(ctx, counting, failing)
		require.ErrorIs(t, err, backendErr)
		assert.Equal(t, 1, calls)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	verrs := validator.ValidationErrors{{Field: "a", Message: "bad"}}
	wrapped := errors.Join(errors.New("context"), verrs)
	assert.Equal(t, verrs, validator.ExtractValidationErrors(wrapped))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
}
