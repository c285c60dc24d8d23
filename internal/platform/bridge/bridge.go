// Package bridge invokes the native EventKit helper process with circuit
// breaker, rate limiting, OpenTelemetry tracing, and permission-aware retry.
//
// The helper performs the actual macOS Reminders/Calendar access and reports
// results as a JSON envelope on stdout. The bridge's job is to run it
// reliably: resolve and validate the executable, spawn it with a flat
// argument list, decode the envelope, detect when a failure is really an OS
// permission dialog that the user must answer, and retry exactly once after
// forcing that dialog back up — without ever showing two overlapping dialogs
// for the same permission domain.
//
// Execution pipeline:
//
//	Locate Binary → Proactive Prompt → Circuit Breaker → Rate Limiter → OTEL Span → Spawn
//
// Construction:
//
//	coord := bridge.NewCoordinator(nil, cfg.Bridge.PromptTimeout, metrics, logger)
//	client := bridge.New(&cfg.Bridge, coord, metrics, logger)
//
// Executing actions:
//
//	lists, err := bridge.Execute[[]string](ctx, client, []string{"--action", "list-calendars"})
package bridge

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/platform/config"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/platform/telemetry"
)

// Client runs the native helper with circuit breaker, rate limiting, and
// tracing. All cross-call mutable state lives in the Coordinator; the Client
// itself is safe for concurrent use.
type Client struct {
	runner        CommandRunner
	coordinator   *Coordinator
	candidates    []string
	breaker       *gobreaker.CircuitBreaker[invokeResult]
	limiter       *rate.Limiter // nil when rate limiting is disabled
	invokeTimeout time.Duration
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// serviceName identifies the bridge in traces, metrics, and health output.
const serviceName = "eventkit-bridge"

// Option configures a Client beyond its BridgeConfig.
type Option func(*Client)

// WithRunner substitutes the process runner. Tests use this to script
// helper responses without spawning real processes.
func WithRunner(r CommandRunner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// WithCandidates replaces the computed binary candidate list.
func WithCandidates(paths ...string) Option {
	return func(c *Client) {
		c.candidates = paths
	}
}

// New creates a bridge client for the native helper.
//
// The coordinator owns per-domain permission prompt state and may be shared
// by multiple clients. If metrics is nil, metric recording is skipped.
func New(cfg *config.BridgeConfig, coordinator *Coordinator, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	cb := gobreaker.NewCircuitBreaker[invokeResult](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	c := &Client{
		runner:        execRunner{},
		coordinator:   coordinator,
		candidates:    CandidatePaths(cfg.BinaryName, cfg.BinaryPath, cfg.SearchDirs),
		breaker:       cb,
		limiter:       limiter,
		invokeTimeout: cfg.InvokeTimeout,
		metrics:       metrics,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs one helper action and decodes its result into T.
//
// Steps, in order:
//
//  1. Resolve the executable. A resolution failure returns a SystemError
//     naming the searched candidates; no process is spawned and no
//     permission prompt is triggered.
//  2. Determine the permission domain from the --action flag.
//  3. If the domain has never been prompted, trigger the OS dialog and wait
//     for it before the first invocation. A failed trigger is logged and
//     does not abort the call.
//  4. Invoke the helper and decode its stdout envelope.
//  5. On a permission error, force the dialog back up, then re-invoke
//     exactly once and return that outcome. Any other error, or a second
//     permission failure, propagates unchanged.
//
// Execute is a function rather than a method so the result type can be
// generic.
func Execute[T any](ctx context.Context, c *Client, args []string) (T, error) {
	var zero T

	path, err := FindSecureBinaryPath(c.candidates)
	if err != nil {
		return zero, err
	}

	action := ActionFromArgs(args)
	dom := DomainForAction(args)

	if !c.coordinator.HasBeenPrompted(dom) {
		if err := c.coordinator.Trigger(ctx, dom, false); err != nil {
			c.logger.Warn("proactive permission prompt failed",
				slog.String("domain", dom.String()),
				slog.Any("error", err),
			)
		}
	}

	res, invErr := c.invoke(ctx, action, path, args)
	out, err := decodeResponse[T](res, invErr)

	var perr *domain.PermissionError
	if !errors.As(err, &perr) {
		return out, err
	}

	// The helper was denied. Force the dialog back up so the user can grant
	// access, then retry exactly once. The trigger's own outcome does not
	// gate the retry; its purpose is re-surfacing the dialog.
	if terr := c.coordinator.Trigger(ctx, perr.Domain, true); terr != nil {
		c.logger.Warn("forced permission prompt failed",
			slog.String("domain", perr.Domain.String()),
			slog.Any("error", terr),
		)
	}

	res, invErr = c.invoke(ctx, action, path, args)
	return decodeResponse[T](res, invErr)
}

// Name returns the bridge identifier used in health output.
// Together with HealthCheck, this lets Client satisfy the
// ports.HealthChecker interface via structural typing.
func (c *Client) Name() string {
	return serviceName
}

// HealthCheck reports the helper's availability based on the circuit breaker
// state — no process is spawned.
//
// State mapping:
//   - "closed"    — helper invocations are succeeding; returns nil.
//   - "half-open" — circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      — helper invocations are failing and being rejected;
//     returns a descriptive error indicating failure.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return domain.NewSystemError("%s: degraded (circuit breaker half-open)", serviceName)
	case gobreaker.StateOpen:
		return domain.NewSystemError("%s: failing (circuit breaker open)", serviceName)
	default:
		return domain.NewSystemError("%s: unknown circuit breaker state %v", serviceName, state)
	}
}

// invoke runs one helper process through the breaker, rate limiter, and
// span, bounded by the configured invocation timeout. Only spawn and
// communication failures count against the breaker; a helper that runs and
// writes an error envelope is a healthy helper.
func (c *Client) invoke(ctx context.Context, action, path string, args []string) (invokeResult, error) {
	start := time.Now()

	res, err := c.breaker.Execute(func() (invokeResult, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return invokeResult{}, domain.NewSystemError("%v", err)
		}

		ictx := ctx
		if c.invokeTimeout > 0 {
			var cancel context.CancelFunc
			ictx, cancel = context.WithTimeout(ctx, c.invokeTimeout)
			defer cancel()
		}

		spanCtx, span := startSpan(ictx, action, path)
		defer span.End()

		res, err := c.run(spanCtx, path, args)
		if err == nil && res.ExitErr != nil && ictx.Err() != nil {
			// The deadline killed the helper; the partial exit status is
			// not an envelope worth parsing.
			err = domain.NewSystemError("invocation timed out after %s", c.invokeTimeout)
			res = invokeResult{}
		}
		finishSpan(span, err)
		return res, err
	})

	c.recordMetrics(ctx, action, start, err)

	return res, err
}

// waitForRateLimit blocks until the rate limiter allows the invocation or
// the context is canceled. Returns nil immediately when rate limiting is
// disabled.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// recordMetrics records invocation duration and count metrics. Metrics are
// recorded outside the circuit breaker so that circuit-open rejections are
// captured. Safe to call with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, action string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrAction.String(action),
		telemetry.AttrResult.String(result),
	)

	c.metrics.BridgeInvocationDuration.Record(ctx, duration, attrs)
	c.metrics.BridgeInvocationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
