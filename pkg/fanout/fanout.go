// Package fanout runs independent read operations concurrently and joins
// them into one result set with first-error-wins semantics.
package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Group collects named tasks and waits for all of them. Tasks must not
// depend on each other's results; dependent stages belong in separate
// groups run sequentially.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

// New creates a Group bound to ctx. When a task fails the group context is
// cancelled; sibling tasks may finish but their results are discarded by
// the caller.
func New(ctx context.Context) *Group {
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: ctx}
}

// Go schedules a named task. The name tags the task's error so the failing
// branch is identifiable at the boundary.
func (g *Group) Go(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if err := fn(g.ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}

// Wait blocks until every scheduled task has returned and reports the first
// error, if any. Wrapped errors stay matchable with errors.Is/As.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
