// Package thread runs functions on goroutines whose handles know how the
// work is going. A plain goroutine gives you nothing to poll; a Handle can
// be asked at any time whether its function is still running, finished, or
// panicked, and panics are captured as errors instead of taking the
// process down.
package thread

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Status is the execution state of a spawned function.
type Status int32

const (
	// Running means the function has not returned yet.
	Running Status = iota
	// Finished means the function returned, successfully or with an error.
	Finished
	// Panicked means the function panicked; the recovered value is
	// available as a *PanicError.
	Panicked
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Panicked:
		return "panicked"
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

// IsRunning reports whether the function has not returned yet.
func (s Status) IsRunning() bool { return s == Running }

// IsFinished reports whether the function returned.
func (s Status) IsFinished() bool { return s == Finished }

// IsPanicked reports whether the function panicked.
func (s Status) IsPanicked() bool { return s == Panicked }

// PanicError is the error surfaced when a spawned function panics. It
// keeps the recovered value and the stack at the point of the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("goroutine panicked: %v", e.Value)
}

// Handle tracks a function spawned with Go.
type Handle[T any] struct {
	done   chan struct{}
	status atomic.Int32
	value  T
	err    error
}

// GoOption configures Go.
type GoOption func(*goOpts)

type goOpts struct {
	log logrus.FieldLogger
}

// WithLogger makes the spawned goroutine log recovered panics, with their
// stacks, before surfacing them through the handle.
func WithLogger(log logrus.FieldLogger) GoOption {
	return func(o *goOpts) {
		o.log = log
	}
}

// Go runs f on a new goroutine and returns a Handle to poll or wait on.
// A panic in f is recovered and reported as a *PanicError from Wait, with
// the handle's status set to Panicked.
func Go[T any](f func() (T, error), opts ...GoOption) *Handle[T] {
	var o goOpts
	for _, opt := range opts {
		opt(&o)
	}
	h := &Handle[T]{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				perr := &PanicError{Value: r, Stack: debug.Stack()}
				if o.log != nil {
					o.log.WithField("panic", r).Error(string(perr.Stack))
				}
				h.err = perr
				h.status.Store(int32(Panicked))
			}
		}()
		h.value, h.err = f()
		h.status.Store(int32(Finished))
	}()
	return h
}

// Status polls the execution state without blocking.
func (h *Handle[T]) Status() Status {
	return Status(h.status.Load())
}

// Done returns a channel closed when the function has returned or panicked.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the function returns and yields its result. When ctx
// is cancelled first, Wait returns ctx.Err(); the goroutine keeps running
// and the handle can be waited on again.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// All runs every function concurrently and returns their results in input
// order. The first error or panic cancels the shared context and is
// returned. limit bounds the number of functions running at once; a limit
// of zero or less means no bound.
func All[T any](ctx context.Context, limit int, fs ...func(context.Context) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]T, len(fs))
	for i, f := range fs {
		i, f := i, f
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Value: r, Stack: debug.Stack()}
				}
			}()
			v, err := f(ctx)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
