package loadgen

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/biometric"
)

const (
	ProfileDay   = "day"
	ProfileBurst = "burst"
)

type Config struct {
	BaseURL     string
	Profile     string
	Employees   int
	Burst       int
	Concurrency int
	Seed        int64
}

type Result struct {
	TotalRequests   int64
	Failures        int64
	Status2xx       int64
	Status4xx       int64
	Status5xx       int64
	CheckIns        int64
	CheckOuts       int64
	RejectedActions int64
	// Violations counts employees that ended up with more than one accepted
	// check-in or check-out in a single burst.
	Violations int64
}

type stats struct {
	total, failures, s2xx, s4xx, s5xx atomic.Int64
	checkIns, checkOuts, rejected     atomic.Int64
	violations                        atomic.Int64
}

func (s *stats) observe(status int) {
	s.total.Add(1)
	switch {
	case status >= 200 && status < 300:
		s.s2xx.Add(1)
	case status >= 400 && status < 500:
		s.s4xx.Add(1)
	case status >= 500:
		s.s5xx.Add(1)
	}
}

func (s *stats) result() Result {
	return Result{
		TotalRequests:   s.total.Load(),
		Failures:        s.failures.Load(),
		Status2xx:       s.s2xx.Load(),
		Status4xx:       s.s4xx.Load(),
		Status5xx:       s.s5xx.Load(),
		CheckIns:        s.checkIns.Load(),
		CheckOuts:       s.checkOuts.Load(),
		RejectedActions: s.rejected.Load(),
		Violations:      s.violations.Load(),
	}
}

// Run simulates cfg.Employees employees against a live API. The day profile
// walks each one through check-in and check-out; the burst profile fires
// concurrent duplicate actions and counts any double acceptance.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Employees <= 0 {
		cfg.Employees = 10
	}
	if cfg.Burst <= 1 {
		cfg.Burst = 5
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	profile := strings.ToLower(cfg.Profile)
	switch profile {
	case "":
		profile = ProfileDay
	case ProfileDay, ProfileBurst:
	default:
		return Result{}, fmt.Errorf("unknown profile: %s", cfg.Profile)
	}

	st := &stats{}
	httpClient := &http.Client{Timeout: 5 * time.Second}
	rng := rand.New(rand.NewSource(cfg.Seed))
	markers := make([][]byte, cfg.Employees)
	for i := range markers {
		markers[i] = make([]byte, 32)
		rng.Read(markers[i])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i := 0; i < cfg.Employees; i++ {
		c := &client{http: httpClient, baseURL: strings.TrimRight(cfg.BaseURL, "/"), marker: markers[i], stats: st}
		email := fmt.Sprintf("loadgen-%d-%d@example.com", cfg.Seed, i)
		g.Go(func() error {
			if err := c.onboard(gctx, fmt.Sprintf("Loadgen %d", i), email, "loadgen-pass"); err != nil {
				return err
			}
			if profile == ProfileBurst {
				if err := burst(gctx, c, st, biometric.PurposeCheckIn, cfg.Burst); err != nil {
					return err
				}
				return burst(gctx, c, st, biometric.PurposeCheckOut, cfg.Burst)
			}
			for _, p := range []biometric.Purpose{biometric.PurposeCheckIn, biometric.PurposeCheckOut} {
				ok, err := c.attend(gctx, p)
				if err != nil {
					return err
				}
				st.record(p, ok)
			}
			return nil
		})
	}
	err := g.Wait()
	return st.result(), err
}

func burst(ctx context.Context, c *client, st *stats, purpose biometric.Purpose, n int) error {
	var accepted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			ok, err := c.attend(gctx, purpose)
			if err != nil {
				return err
			}
			st.record(purpose, ok)
			if ok {
				accepted.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if accepted.Load() > 1 {
		st.violations.Add(1)
	}
	return nil
}

func (s *stats) record(p biometric.Purpose, ok bool) {
	switch {
	case !ok:
		s.rejected.Add(1)
	case p == biometric.PurposeCheckIn:
		s.checkIns.Add(1)
	default:
		s.checkOuts.Add(1)
	}
}
