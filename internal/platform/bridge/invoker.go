package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// CommandRunner abstracts process execution so tests can substitute a fake
// helper without spawning real processes.
type CommandRunner interface {
	// Run executes the command and returns captured stdout and stderr.
	// A non-nil error indicates either a non-zero exit (*exec.ExitError)
	// or a failure to start or communicate with the process.
	Run(ctx context.Context, path string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// invokeResult carries everything one helper run produced. A non-zero exit
// does not make the run a failure by itself: the helper writes a structured
// error envelope to stdout before exiting abnormally, and that envelope
// must win over the opaque exit status.
type invokeResult struct {
	Stdout []byte
	Stderr []byte
	// ExitErr is the *exec.ExitError from a non-zero exit, nil otherwise.
	ExitErr error
}

// run spawns one helper process. Spawn and communication failures are
// returned as SystemErrors; a non-zero exit is captured in the result so
// the parser can prefer any structured envelope on stdout.
func (c *Client) run(ctx context.Context, path string, args []string) (invokeResult, error) {
	stdout, stderr, runErr := c.runner.Run(ctx, path, args...)
	res := invokeResult{Stdout: stdout, Stderr: stderr}

	if runErr == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitErr = runErr
		return res, nil
	}

	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return res, domain.NewSystemError("%v: %s", runErr, msg)
	}
	return res, domain.NewSystemError("%v", runErr)
}

// startSpan creates an OTEL client span for the helper invocation.
func startSpan(ctx context.Context, action, path string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("bridge")

	spanName := fmt.Sprintf("CLI %s", action)
	return tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("bridge.action", action),
			attribute.String("process.executable.path", path),
		),
	)
}

// finishSpan records the invocation outcome on the span.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
