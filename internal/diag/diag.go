// Package diag implements the health subcommand: a best-effort sweep over a
// running deployment. Every probe runs regardless of earlier failures; the
// sweep only counts as failed when no component responds at all.
package diag

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shopapi/pkg/logger"
	"shopapi/pkg/storage"
)

// probeTimeout bounds each individual probe.
const probeTimeout = 5 * time.Second

// Check is the outcome of a single probe.
type Check struct {
	Name string
	Err  error
}

// OK reports whether the probe succeeded.
func (c Check) OK() bool { return c.Err == nil }

// Sweeper probes the HTTP surface, PostgreSQL and Redis of a deployment.
// Storage and Redis are optional; nil handles skip the probe.
type Sweeper struct {
	httpClient *http.Client
	baseURL    string

	store storage.Storage
	redis redis.UniversalClient
}

// New builds a Sweeper. baseURL points at the HTTP server, e.g.
// "http://localhost:8000".
func New(baseURL string, store storage.Storage, rds redis.UniversalClient) *Sweeper {
	return &Sweeper{
		httpClient: &http.Client{Timeout: probeTimeout},
		baseURL:    baseURL,
		store:      store,
		redis:      rds,
	}
}

// httpPaths are the endpoints probed on the HTTP surface. Any status below
// 500 counts as alive; auth and method errors still prove the route is
// served.
var httpPaths = []string{
	"/healthz",
	"/metrics",
	"/specs/v1.yaml",
	"/v1/docs/",
	"/v1/shipments",
	"/v1/webhooks/shipments/probe",
}

func (s *Sweeper) probeHTTP(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach %s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	return nil
}

// Sweep runs every probe and returns their outcomes. Failures are logged but
// never abort the sweep.
func (s *Sweeper) Sweep(ctx context.Context) []Check {
	checks := make([]Check, 0, len(httpPaths)+2)

	for _, path := range httpPaths {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.probeHTTP(probeCtx, path)
		cancel()

		checks = append(checks, Check{Name: "http " + path, Err: err})
	}

	if s.store != nil {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.store.Ping(probeCtx)
		cancel()

		checks = append(checks, Check{Name: "postgres", Err: err})
	}

	if s.redis != nil {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := s.redis.Ping(probeCtx).Err()
		cancel()

		checks = append(checks, Check{Name: "redis", Err: err})
	}

	for _, check := range checks {
		if check.OK() {
			logger.Info(ctx, "probe ok", zap.String("probe", check.Name))
		} else {
			logger.Warn(ctx, "probe failed",
				zap.String("probe", check.Name), zap.Error(check.Err))
		}
	}

	return checks
}

// AnyAlive reports whether at least one probe succeeded. The health command
// exits non-zero only when this is false.
func AnyAlive(checks []Check) bool {
	for _, check := range checks {
		if check.OK() {
			return true
		}
	}

	return false
}
