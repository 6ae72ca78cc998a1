package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/logger"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Connect to the configured backend and check it answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.LookupTimeout)
			defer cancel()

			start := time.Now()
			be, err := openBackend(ctx, a.cfg, a.log)
			if err != nil {
				return errors.Join(ErrBackendUnhealthy, err)
			}
			defer be.close()

			if err := be.health(ctx); err != nil {
				a.log.ErrorContext(ctx, "healthcheck failed", logger.Backend(be.name), logger.Error(err))
				return errors.Join(ErrBackendUnhealthy, err)
			}

			a.log.InfoContext(ctx, "healthcheck passed", logger.Backend(be.name), logger.Duration(time.Since(start)))

			return a.finish(cmd.OutOrStdout(), report{
				Command: "health",
				Backend: be.name,
				Valid:   true,
			})
		},
	}
}
