package tool

import (
	"context"
	"time"

	"github.com/habeeblht17/mcp-tools-server/internal/metrics"
	"github.com/habeeblht17/mcp-tools-server/internal/tools/shared"
)

// Builder provides a fluent API for creating tools with middleware.
// Middleware order is fixed: timeout wraps the handler, metrics wrap both,
// so recorded latency includes time spent waiting on the deadline.
type Builder struct {
	name        string
	description string
	fn          Func

	withTimeout bool
	timeout     time.Duration

	withMetrics bool
}

// NewBuilder creates a builder for a tool
func NewBuilder(name, description string, fn Func) *Builder {
	return &Builder{
		name:        name,
		description: description,
		fn:          fn,
	}
}

// WithTimeout bounds each invocation with a context deadline
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.withTimeout = true
	b.timeout = timeout
	return b
}

// WithMetrics records invocation counts and latency per tool
func (b *Builder) WithMetrics() *Builder {
	b.withMetrics = true
	return b
}

// Build creates the tool with configured middleware applied
func (b *Builder) Build() Tool {
	fn := b.fn

	if b.withTimeout {
		fn = wrapWithTimeout(b.timeout, fn)
	}
	if b.withMetrics {
		fn = wrapWithMetrics(b.name, fn)
	}

	return New(b.name, b.description, fn)
}

func wrapWithTimeout(timeout time.Duration, fn Func) Func {
	if timeout <= 0 {
		return fn
	}

	return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return fn(ctx, args)
	}
}

func wrapWithMetrics(name string, fn Func) Func {
	return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		start := time.Now()
		result, err := fn(ctx, args)

		status := shared.StatusSuccess
		if err != nil || shared.IsError(result) {
			status = shared.StatusError
		}
		metrics.RecordToolExecution(name, status, time.Since(start))

		return result, err
	}
}
