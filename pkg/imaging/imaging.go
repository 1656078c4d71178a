// Package imaging defines the image-processing collaborator the rendering
// core delegates to for photo preparation (background removal and similar).
// The core never processes pixels itself; it consumes already-resolved data.
package imaging

import (
	"context"
	"errors"
	"fmt"
)

// Method identifies which stage of the fallback chain produced a result.
type Method string

const (
	// MethodService is the remote background-removal service.
	MethodService Method = "service"
	// MethodModel is the local model fallback. It is the heaviest stage and
	// is never used on bulk paths.
	MethodModel Method = "model"
	// MethodPassthrough returns the input unchanged.
	MethodPassthrough Method = "passthrough"
)

// Request carries one image through the processing chain.
type Request struct {
	// Image is the encoded source image.
	Image []byte
	// Key is the caller-supplied idempotency key. Cached results are keyed
	// by it and never reprocessed.
	Key string
	// Bulk marks batch invocations. Bulk requests must not reach the model
	// stage; only the service or passthrough may serve them.
	Bulk bool
}

// Result is the outcome of one processing attempt.
type Result struct {
	Image     []byte
	Method    Method
	Succeeded bool
}

// Processor transforms one image. Implementations own their own timeout
// budgets; callers bound the whole call through ctx.
type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, req Request) (Result, error)

func (f ProcessorFunc) Process(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// Passthrough returns the input image unchanged. It terminates every chain,
// so processing degrades to the original photo rather than failing.
func Passthrough() Processor {
	return ProcessorFunc(func(_ context.Context, req Request) (Result, error) {
		return Result{Image: req.Image, Method: MethodPassthrough, Succeeded: false}, nil
	})
}

// Option configures a Chain.
type Option func(*Chain)

// WithService sets the remote service stage.
func WithService(p Processor) Option {
	return func(c *Chain) { c.service = p }
}

// WithModel sets the local model stage.
func WithModel(p Processor) Option {
	return func(c *Chain) { c.model = p }
}

// Chain runs the documented method priority: service first, then the local
// model, then passthrough. Bulk requests skip the model stage to bound
// worst-case memory and time.
type Chain struct {
	service Processor
	model   Processor
}

// NewChain builds a chain from the configured stages. Both stages are
// optional; an empty chain is pure passthrough.
func NewChain(opts ...Option) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Process walks the chain until a stage succeeds. Stage errors fall through
// to the next stage; only context cancellation aborts the walk.
func (c *Chain) Process(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("imaging: process: %w", err)
	}

	stages := []Processor{}
	if c.service != nil {
		stages = append(stages, c.service)
	}
	if c.model != nil && !req.Bulk {
		stages = append(stages, c.model)
	}

	for _, stage := range stages {
		res, err := stage.Process(ctx, req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return Result{}, fmt.Errorf("imaging: process: %w", err)
			}
			continue
		}
		if res.Succeeded {
			return res, nil
		}
	}
	return Passthrough().Process(ctx, req)
}
