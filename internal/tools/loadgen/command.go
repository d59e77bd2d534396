package loadgen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/common"
	"github.com/sandeepkv93/biometric-attendance-backend/internal/tools/ui"
)

type options struct {
	baseURL     string
	profile     string
	employees   int
	burst       int
	concurrency int
	seed        int64
	timeout     time.Duration
	ci          bool
}

var exit = os.Exit

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "loadgen", Short: "Simulate employees recording attendance against a running API"}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", ProfileDay, "traffic profile: day|burst")
	cmd.PersistentFlags().IntVar(&opts.employees, "employees", 10, "simulated employees")
	cmd.PersistentFlags().IntVar(&opts.burst, "burst", 5, "concurrent duplicate actions per employee in burst profile")
	cmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 5, "employees simulated at once")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", time.Now().Unix(), "seed for emails and device markers")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Minute, "overall timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newRunCommand(opts))
	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "loadgen run", func(ctx context.Context) ([]string, error) {
				res, err := Run(ctx, Config{
					BaseURL:     opts.baseURL,
					Profile:     opts.profile,
					Employees:   opts.employees,
					Burst:       opts.burst,
					Concurrency: opts.concurrency,
					Seed:        opts.seed,
				})
				details := []string{
					fmt.Sprintf("total_requests=%d", res.TotalRequests),
					fmt.Sprintf("failures=%d", res.Failures),
					fmt.Sprintf("status_2xx=%d", res.Status2xx),
					fmt.Sprintf("status_4xx=%d", res.Status4xx),
					fmt.Sprintf("status_5xx=%d", res.Status5xx),
					fmt.Sprintf("check_ins=%d", res.CheckIns),
					fmt.Sprintf("check_outs=%d", res.CheckOuts),
					fmt.Sprintf("rejected=%d", res.RejectedActions),
					fmt.Sprintf("violations=%d", res.Violations),
				}
				if err == nil && res.Violations > 0 {
					err = fmt.Errorf("%d employees had a duplicate action accepted", res.Violations)
				}
				return details, err
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "loadgen run", details, err)
			}
			if err != nil {
				exit(4)
			}
			return nil
		},
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
