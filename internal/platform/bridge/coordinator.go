package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/platform/telemetry"
)

// DefaultPromptTimeout bounds the OS permission dialog trigger. The dialog
// waits on a human decision, so the ceiling is generous; without one, a
// dismissed or ignored dialog would hang the bridge forever.
const DefaultPromptTimeout = 120 * time.Second

// TriggerFunc runs the OS-dialog-surfacing action for one permission
// domain. Its only purpose is the side effect; output is discarded.
type TriggerFunc func(ctx context.Context, dom domain.PermissionDomain) error

// promptRecord is the per-domain prompt state. The done channel closes when
// the trigger settles; err is written exactly once before the close, so
// waiters reading it after <-done observe it safely.
type promptRecord struct {
	done chan struct{}
	err  error
}

// Coordinator serializes OS permission prompts per domain. For a given
// domain at most one dialog-triggering operation is ever in flight, and all
// concurrent callers observe the same outcome. State lives on the instance,
// never in package globals, so tests and multiple bridges stay isolated.
type Coordinator struct {
	trigger TriggerFunc
	timeout time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger

	mu      sync.Mutex
	prompts map[domain.PermissionDomain]*promptRecord
}

// NewCoordinator creates a prompt coordinator. A nil trigger installs the
// production osascript trigger; a non-positive timeout falls back to
// DefaultPromptTimeout. If metrics is nil, metric recording is skipped.
func NewCoordinator(trigger TriggerFunc, timeout time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *Coordinator {
	if trigger == nil {
		trigger = osascriptTrigger
	}
	if timeout <= 0 {
		timeout = DefaultPromptTimeout
	}
	return &Coordinator{
		trigger: trigger,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
		prompts: make(map[domain.PermissionDomain]*promptRecord),
	}
}

// Trigger surfaces the OS permission dialog for dom.
//
// With force false, a domain that has already been prompted (in flight or
// completed, including completed-with-failure) is never prompted again: the
// caller receives the recorded outcome, waiting on an in-flight trigger if
// necessary. With force true, a completed record is replaced by a fresh
// trigger; an in-flight trigger is joined rather than duplicated, so the
// at-most-one-dialog invariant holds even during a forced retry.
func (c *Coordinator) Trigger(ctx context.Context, dom domain.PermissionDomain, force bool) error {
	c.mu.Lock()
	if rec, ok := c.prompts[dom]; ok {
		select {
		case <-rec.done:
			if !force {
				err := rec.err
				c.mu.Unlock()
				return err
			}
			// force: fall through and start a fresh trigger.
		default:
			// In flight: join it regardless of force.
			c.mu.Unlock()
			select {
			case <-rec.done:
				return rec.err
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	rec := &promptRecord{done: make(chan struct{})}
	c.prompts[dom] = rec
	c.mu.Unlock()

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Info("triggering permission prompt",
		slog.String("domain", dom.String()),
		slog.Bool("force", force),
	)

	err := c.trigger(tctx, dom)
	if err != nil {
		// Recorded as prompted-but-failed, not as "not yet prompted":
		// repeated unforced calls must not re-surface the dialog.
		c.logger.Warn("permission prompt trigger failed",
			slog.String("domain", dom.String()),
			slog.Any("error", err),
		)
	}

	c.recordPrompt(ctx, dom, err)

	rec.err = err
	close(rec.done)
	return err
}

// HasBeenPrompted reports whether a prompt record (in flight or completed)
// exists for dom.
func (c *Coordinator) HasBeenPrompted(dom domain.PermissionDomain) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.prompts[dom]
	return ok
}

// Reset clears all prompt records. For test isolation and fresh sessions
// only; normal request handling never resets.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = make(map[domain.PermissionDomain]*promptRecord)
}

func (c *Coordinator) recordPrompt(ctx context.Context, dom domain.PermissionDomain, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	c.metrics.BridgePromptTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrDomain.String(dom.String()),
		telemetry.AttrResult.String(result),
	))
}

// promptScript returns the AppleScript one-liner whose execution makes
// macOS surface the consent dialog for dom's owning application.
func promptScript(dom domain.PermissionDomain) string {
	container := "every list"
	if dom == domain.DomainCalendars {
		container = "every calendar"
	}
	return fmt.Sprintf("tell application %q to name of %s", dom.AppName(), container)
}

// osascriptTrigger surfaces the permission dialog by asking the domain's
// native application for a trivial listing. macOS shows the consent dialog
// on first access; the listing itself is discarded.
func osascriptTrigger(ctx context.Context, dom domain.PermissionDomain) error {
	cmd := exec.CommandContext(ctx, "/usr/bin/osascript", "-e", promptScript(dom))
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("triggering %s prompt: %s: %w", dom, msg, err)
		}
		return fmt.Errorf("triggering %s prompt: %w", dom, err)
	}
	return nil
}
