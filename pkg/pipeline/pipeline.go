// Package pipeline runs an ordered chain of checks over a request state
// before a final handler. The first failing step stops the chain.
package pipeline

import "context"

// Step inspects or enriches s. A non-nil error short-circuits the chain.
type Step[S any] func(ctx context.Context, s *S) error

// Chain is an ordered list of steps.
type Chain[S any] []Step[S]

// New returns a chain of the given steps in order.
func New[S any](steps ...Step[S]) Chain[S] {
	return Chain[S](steps)
}

// Then returns a new chain with more steps appended.
func (c Chain[S]) Then(steps ...Step[S]) Chain[S] {
	out := make(Chain[S], 0, len(c)+len(steps))
	out = append(out, c...)
	return append(out, steps...)
}

// Run executes every step in order and returns the first error.
func (c Chain[S]) Run(ctx context.Context, s *S) error {
	for _, step := range c {
		if err := step(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Check adapts a pure validation func into a Step.
func Check[S any](fn func(s *S) error) Step[S] {
	return func(_ context.Context, s *S) error {
		return fn(s)
	}
}
