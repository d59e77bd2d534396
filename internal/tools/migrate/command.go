package migrate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/common"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/ui"
)

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
}

var exit = os.Exit

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Attendance schema migration tooling",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")

	cmd.AddCommand(
		newCommand(opts, "up", "Create or update the attendance tables", up),
		newCommand(opts, "status", "Report which tables still need migrating", status),
		newCommand(opts, "plan", "Show what up would change without touching the schema", plan),
	)
	return cmd
}

type step func(ctx context.Context, db *gorm.DB) ([]string, error)

func newCommand(opts *options, use, short string, fn step) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := "migrate " + use
			details, err := run(opts, title, func(ctx context.Context) ([]string, error) {
				_, db, err := common.LoadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer common.CloseDB(db)
				return fn(ctx, db)
			})
			if opts.ci {
				common.PrintCIResult(err == nil, title, details, err)
			}
			if err != nil {
				exit(3)
			}
			return nil
		},
	}
}

func up(ctx context.Context, db *gorm.DB) ([]string, error) {
	pending := database.PendingTables(db.WithContext(ctx))
	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return []string{"schema already up to date", "columns and indexes reconciled"}, nil
	}
	return []string{"created tables: " + strings.Join(pending, ", ")}, nil
}

func status(ctx context.Context, db *gorm.DB) ([]string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	pending := database.PendingTables(db.WithContext(ctx))
	if len(pending) > 0 {
		return []string{"database reachable", "pending tables: " + strings.Join(pending, ", ")}, nil
	}
	return []string{"database reachable", "all tables present"}, nil
}

func plan(ctx context.Context, db *gorm.DB) ([]string, error) {
	pending := database.PendingTables(db.WithContext(ctx))
	details := make([]string, 0, len(pending)+1)
	for _, t := range pending {
		details = append(details, "would create table "+t)
	}
	if len(pending) == 0 {
		details = append(details, "would reconcile columns and indexes on existing tables")
	}
	return append(details, "no mutation executed in plan mode"), nil
}

func run(opts *options, title string, fn ui.Action) ([]string, error) {
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, opts.timeout, fn)
}
