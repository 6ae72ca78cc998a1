package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
	"github.com/dmitrymomot/ruleset/pkg/validator"
)

// typedValue converts the command-line value to the type stored in the backend column.
func typedValue(value, typ string) (any, error) {
	var (
		v   any
		err error
	)
	switch typ {
	case "string", "":
		return value, nil
	case "int":
		v, err = strconv.Atoi(value)
	case "float":
		v, err = strconv.ParseFloat(value, 64)
	case "bool":
		v, err = strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("%w: unknown value type %q", rules.ErrInvalidArgument, typ)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid %s", rules.ErrInvalidArgument, value, typ)
	}
	return v, nil
}

func newUniqueCmd(a *app) *cobra.Command {
	var table, column, field, typ string

	cmd := &cobra.Command{
		Use:   "unique <value>",
		Short: "Check that no row in table.column holds the value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := typedValue(args[0], typ)
			if err != nil {
				return err
			}
			if !rules.ValidIdentifier(table) || !rules.ValidIdentifier(column) {
				return fmt.Errorf("%w: table %q, column %q", rules.ErrInvalidArgument, table, column)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.LookupTimeout)
			defer cancel()

			be, err := openBackend(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			defer be.close()

			if field == "" {
				field = column
			}

			start := time.Now()
			err = validator.ApplyContext(ctx, validator.Unique(field, be.lookup, table, column, value))
			verrs := validator.ExtractValidationErrors(err)
			if err != nil && verrs == nil {
				a.log.ErrorContext(ctx, "uniqueness check failed",
					logger.Lookup(be.name, table, column),
					logger.Error(err),
				)
				return err
			}

			a.log.InfoContext(ctx, "uniqueness checked",
				logger.Lookup(be.name, table, column),
				logger.Verdict(verrs == nil),
				logger.Duration(time.Since(start)),
			)

			return a.finish(cmd.OutOrStdout(), report{
				Command: "unique",
				Rule:    "unique",
				Backend: be.name,
				Table:   table,
				Column:  column,
				Value:   args[0],
				Valid:   verrs == nil,
				Errors:  verrs,
			})
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Table, collection, index or key namespace to search")
	cmd.Flags().StringVar(&column, "column", "", "Column or field holding the value")
	cmd.Flags().StringVar(&field, "field", "", "Field name used in error reports (default: column)")
	cmd.Flags().StringVar(&typ, "type", "string", "Value type: string, int, float or bool")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}
