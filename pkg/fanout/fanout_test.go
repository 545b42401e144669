package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_AllTasksSucceed(t *testing.T) {
	var a, b, c int

	g := New(context.Background())
	g.Go("a", func(ctx context.Context) error { a = 1; return nil })
	g.Go("b", func(ctx context.Context) error { b = 2; return nil })
	g.Go("c", func(ctx context.Context) error { c = 3; return nil })

	require.NoError(t, g.Wait())
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, c)
}

func TestGroup_FirstErrorWins(t *testing.T) {
	sentinel := errors.New("store unreachable")

	g := New(context.Background())
	g.Go("books", func(ctx context.Context) error { return sentinel })
	g.Go("authors", func(ctx context.Context) error { return nil })

	err := g.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "books:")
}

func TestGroup_SiblingsFinishAfterFailure(t *testing.T) {
	var finished atomic.Bool

	g := New(context.Background())
	g.Go("failing", func(ctx context.Context) error { return errors.New("boom") })
	g.Go("slow", func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	err := g.Wait()
	require.Error(t, err)
	assert.True(t, finished.Load(), "Wait must block until every task returns")
}

func TestGroup_ContextCancelledAfterFailure(t *testing.T) {
	cancelled := make(chan struct{})

	g := New(context.Background())
	g.Go("failing", func(ctx context.Context) error { return errors.New("boom") })
	g.Go("watching", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			close(cancelled)
		case <-time.After(time.Second):
			t.Error("sibling context was never cancelled")
		}
		return nil
	})

	require.Error(t, g.Wait())
	<-cancelled
}

func TestGroup_NoTasks(t *testing.T) {
	g := New(context.Background())
	assert.NoError(t, g.Wait())
}
