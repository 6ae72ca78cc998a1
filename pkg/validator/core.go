package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single failed rule for a field.
type ValidationError struct {
	Field   string `json:"field" yaml:"field"`
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when it fails.
// Exactly one of Check and Lookup is set.
type Rule struct {
	Check  func() bool
	Lookup func(ctx context.Context) (bool, error)
	Error  ValidationError
}

// Apply evaluates rules without a context. Lookup rules run with context.Background.
func Apply(rules ...Rule) error {
	return ApplyContext(context.Background(), rules...)
}

// ApplyContext evaluates every rule in order and collects failures into
// ValidationErrors. A lookup error aborts evaluation and is returned as is,
// so a broken backend is never reported as a failed rule.
func ApplyContext(ctx context.Context, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		ok, err := rule.eval(ctx)
		if err != nil {
			return err
		}
		if !ok {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (r Rule) eval(ctx context.Context) (bool, error) {
	switch {
	case r.Lookup != nil:
		return r.Lookup(ctx)
	case r.Check != nil:
		return r.Check(), nil
	default:
		return false, fmt.Errorf("%w: rule %q for field %q has no check", ErrEmptyRule, r.Error.Rule, r.Error.Field)
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
