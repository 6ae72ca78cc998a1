package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

type runIDKey struct{}

// app is the state shared by all commands of one invocation.
type app struct {
	cfg      AppConfig
	log      *slog.Logger
	runID    string
	output   string
	strict   bool
	envFiles []string
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "rulecheck",
		Short: "Run validation rules and uniqueness lookups from the shell",
		Long: `rulecheck evaluates single validation rules against a value,
escapes text for HTML and checks values for uniqueness against
the configured backend (UNIQUE_BACKEND).

Backends:
  memory      in-process set, optionally seeded from MEMORY_SEED_FILE
  pg          PostgreSQL (PG_CONN_URL)
  sqlite      SQLite (SQLITE_DSN)
  redis       Redis sets (REDIS_URL)
  mongo       MongoDB (MONGODB_URL, MONGODB_DATABASE)
  opensearch  OpenSearch _count (OPENSEARCH_ADDRESSES)`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "Report format: text, json or yaml")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "Exit with an error when a rule fails")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Additional dotenv files to load")

	root.AddCommand(
		newCheckCmd(a),
		newEscapeCmd(a),
		newUniqueCmd(a),
		newHealthCmd(a),
	)

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, a.output)
	}

	if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(runIDFromContext),
	}
	if a.cfg.LogLevel != "" {
		if _, ok := logger.ParseLevel(a.cfg.LogLevel); !ok {
			return fmt.Errorf("%w: LOG_LEVEL %q", rules.ErrInvalidArgument, a.cfg.LogLevel)
		}
		opts = append(opts, logger.WithLevelName(a.cfg.LogLevel))
	}
	if a.cfg.LogFormat != "" {
		f := logger.Format(a.cfg.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return fmt.Errorf("%w: LOG_FORMAT %q", rules.ErrInvalidArgument, a.cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(f))
	}
	a.log = logger.New(opts...)
	logger.SetAsDefault(a.log)

	a.runID = uuid.NewString()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, a.runID))

	return nil
}

func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, _ := ctx.Value(runIDKey{}).(string)
	return logger.RunID(id), id != ""
}

// finish writes rep and applies --strict.
func (a *app) finish(w io.Writer, rep report) error {
	rep.RunID = a.runID
	if err := rep.write(w, a.output); err != nil {
		return err
	}
	if a.strict && !rep.Valid {
		return ErrRuleFailed
	}
	return nil
}
