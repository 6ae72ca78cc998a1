package validator

import "github.com/dmitrymomot/ruleset/pkg/rules"

// TimeStamp checks the YYYY-MM-DD shape only; 2023-02-31 passes.
func TimeStamp(field, value string) Rule {
	return newRule(field, "timestamp", "must be a date in YYYY-MM-DD format", func() bool {
		return rules.TimeStamp(value)
	})
}

func YearMonth(field, value string) Rule {
	return newRule(field, "year_month", "must be a month in YYYY-MM format", func() bool {
		return rules.YearMonth(value)
	})
}

func Email(field, value string) Rule {
	return newRule(field, "email", "must be a valid email address", func() bool {
		return rules.Email(value)
	})
}

// URL passes when value contains a link anywhere in the text.
func URL(field, value string) Rule {
	return newRule(field, "url", "must contain a valid URL", func() bool {
		return rules.URL(value)
	})
}

func Name(field, value string) Rule {
	return newRule(field, "name", "must contain only letters and spaces", func() bool {
		return rules.Name(value)
	})
}

// JSON accepts string, []byte and json.RawMessage values.
func JSON(field string, value any) Rule {
	return newRule(field, "json", "must be valid JSON", func() bool {
		return rules.IsJSON(value)
	})
}
