package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/database"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/domain"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/security"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/common"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/ui"
)

type options struct {
	envFile string
	file    string
	timeout time.Duration
	ci      bool
}

// Account is one employee to seed, with the password in clear text.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var demoAccounts = []Account{
	{Name: "Demo Employee", Email: "demo@example.com", Password: "demo123"},
	{Name: "Second Shift", Email: "shift@example.com", Password: "shift123"},
}

var exit = os.Exit

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Seed employee accounts for local testing"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "JSON array of {name,email,password}; demo accounts when empty")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Create seed employees that do not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed apply", func(ctx context.Context) ([]string, error) {
				accounts, err := loadAccounts(opts.file)
				if err != nil {
					return nil, err
				}
				_, db, err := common.LoadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				defer common.CloseDB(db)
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				employees, err := hashAccounts(accounts, security.NewPasswordHasher(security.DefaultArgon2Params()))
				if err != nil {
					return nil, err
				}
				report, err := database.SeedEmployees(ctx, db, employees)
				if err != nil {
					return nil, err
				}
				return []string{
					fmt.Sprintf("created employees: %d", report.CreatedEmployees),
					fmt.Sprintf("already present: %d", report.ExistingEmployees),
				}, nil
			})
			finish(opts, "seed apply", details, err)
			return nil
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "List the employees apply would create",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed dry-run", func(ctx context.Context) ([]string, error) {
				accounts, err := loadAccounts(opts.file)
				if err != nil {
					return nil, err
				}
				details := make([]string, 0, len(accounts))
				for _, a := range accounts {
					details = append(details, fmt.Sprintf("would ensure employee %s <%s>", a.Name, strings.ToLower(strings.TrimSpace(a.Email))))
				}
				return details, nil
			})
			finish(opts, "seed dry-run", details, err)
			return nil
		},
	}
}

func loadAccounts(path string) ([]Account, error) {
	if path == "" {
		return demoAccounts, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var accounts []Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, a := range accounts {
		if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.Email) == "" || len(a.Password) < 6 {
			return nil, fmt.Errorf("seed account %d: name, email and a password of at least 6 characters are required", i)
		}
	}
	return accounts, nil
}

func hashAccounts(accounts []Account, hasher *security.PasswordHasher) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, len(accounts))
	for _, a := range accounts {
		hash, err := hasher.Hash(a.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.Email, err)
		}
		employees = append(employees, domain.Employee{Name: strings.TrimSpace(a.Name), Email: a.Email, PasswordHash: hash})
	}
	return employees, nil
}

func finish(opts *options, title string, details []string, err error) {
	if opts.ci {
		common.PrintCIResult(err == nil, title, details, err)
	}
	if err != nil {
		exit(3)
	}
}

func run(opts *options, title string, fn ui.Action) ([]string, error) {
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, opts.timeout, fn)
}
