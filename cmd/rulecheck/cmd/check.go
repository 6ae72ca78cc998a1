package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
	"github.com/dmitrymomot/ruleset/pkg/validator"
)

// checkDef describes one rule reachable from `rulecheck check`.
type checkDef struct {
	params string // usage of the positional parameters, "" for none
	arity  int
	build  func(field, value string, params []string) (validator.Rule, error)
}

func plain(fn func(field, value string) validator.Rule) checkDef {
	return checkDef{build: func(field, value string, _ []string) (validator.Rule, error) {
		return fn(field, value), nil
	}}
}

func bounded(fn func(field, value string, n int) validator.Rule) checkDef {
	return checkDef{
		params: "<n>",
		arity:  1,
		build: func(field, value string, params []string) (validator.Rule, error) {
			n, err := parseBound(params[0])
			if err != nil {
				return validator.Rule{}, err
			}
			return fn(field, value, n), nil
		},
	}
}

var checks = map[string]checkDef{
	"min-length": bounded(validator.MinLength),
	"max-length": bounded(validator.MaxLength),
	"min-bytes":  bounded(validator.MinBytes),
	"max-bytes":  bounded(validator.MaxBytes),
	"length-between": {
		params: "<min> <max>",
		arity:  2,
		build: func(field, value string, params []string) (validator.Rule, error) {
			lo, err := parseBound(params[0])
			if err != nil {
				return validator.Rule{}, err
			}
			hi, err := parseBound(params[1])
			if err != nil {
				return validator.Rule{}, err
			}
			if lo > hi {
				return validator.Rule{}, fmt.Errorf("%w: min %d is greater than max %d", rules.ErrInvalidArgument, lo, hi)
			}
			return validator.LengthBetween(field, value, lo, hi), nil
		},
	},
	"matches": {
		params: "<target>",
		arity:  1,
		build: func(field, value string, params []string) (validator.Rule, error) {
			return validator.Matches(field, value, params[0]), nil
		},
	},
	"no-special-chars": plain(validator.NoSpecialChars),
	"alphabetic":       plain(validator.Alphabetic),
	"alphanumeric":     plain(validator.AlphaNumeric),
	"digit":            plain(validator.Digit),
	"required":         plain(validator.Required),
	"timestamp":        plain(validator.TimeStamp),
	"year-month":       plain(validator.YearMonth),
	"email":            plain(validator.Email),
	"url":              plain(validator.URL),
	"name":             plain(validator.Name),
	"json": plain(func(field, value string) validator.Rule {
		return validator.JSON(field, value)
	}),
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bound %q must be a non-negative integer", rules.ErrInvalidArgument, s)
	}
	return n, nil
}

func checkNames() []string {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func usageTable() string {
	var b strings.Builder
	for _, name := range checkNames() {
		fmt.Fprintf(&b, "  %-17s %s\n", name, checks[name].params)
	}
	return b.String()
}

// buildCheck resolves a rule name and its positional parameters.
func buildCheck(field, name, value string, params []string) (validator.Rule, error) {
	def, ok := checks[name]
	if !ok {
		return validator.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	if len(params) != def.arity {
		return validator.Rule{}, fmt.Errorf("%w: %s expects %d parameter(s), got %d", rules.ErrInvalidArgument, name, def.arity, len(params))
	}
	return def.build(field, value, params)
}

func newCheckCmd(a *app) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "check <rule> <value> [param...]",
		Short: "Evaluate one rule against a value",
		Long:  "Evaluate one rule against a value.\n\nRules:\n" + usageTable(),
		Args:  cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return checkNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value, params := args[0], args[1], args[2:]

			rule, err := buildCheck(field, name, value, params)
			if err != nil {
				return err
			}

			err = validator.ApplyContext(cmd.Context(), rule)
			verrs := validator.ExtractValidationErrors(err)
			if err != nil && verrs == nil {
				return err
			}

			a.log.DebugContext(cmd.Context(), "rule evaluated",
				logger.Rule(name),
				logger.Verdict(verrs == nil),
			)

			return a.finish(cmd.OutOrStdout(), report{
				Command: "check",
				Rule:    name,
				Params:  params,
				Value:   value,
				Valid:   verrs == nil,
				Errors:  verrs,
			})
		},
	}

	cmd.Flags().StringVar(&field, "field", "value", "Field name used in error reports")
	return cmd
}
