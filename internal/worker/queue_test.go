package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/drawbot/internal/domain"
)

func TestSubmitReturnsJobResult(t *testing.T) {
	q := New(4)
	defer q.Close()

	status, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) {
		return "OK: House drawn.", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "OK: House drawn.", status)

	boom := errors.New("boom")
	_, err = q.Submit(context.Background(), func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestJobsNeverOverlap(t *testing.T) {
	q := New(64)
	defer q.Close()

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&running, -1)
				return "", nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestJobsRunInOrder(t *testing.T) {
	q := New(16)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = q.Submit(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "", nil
		})
	}()
	<-started

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = q.Submit(context.Background(), func(ctx context.Context) (string, error) {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return "", nil
			})
		}(i)
		require.Eventually(t, func() bool { return q.Pending() == i+1 }, time.Second, time.Millisecond)
	}

	close(release)
	wg.Wait()
	q.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestCancelledWhileQueuedIsSkipped(t *testing.T) {
	q := New(4)
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = q.Submit(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "", nil
		})
	}()
	<-started

	var ran atomic.Bool
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := q.Submit(ctx, func(ctx context.Context) (string, error) {
			ran.Store(true)
			return "", nil
		})
		done <- err
	}()
	require.Eventually(t, func() bool { return q.Pending() == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(release)
	_, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) { return "", nil })
	require.NoError(t, err)
	assert.False(t, ran.Load())
}

func TestStartedJobIgnoresCancellation(t *testing.T) {
	q := New(1)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	status, err := q.Submit(ctx, func(jobCtx context.Context) (string, error) {
		cancel()
		return fmt.Sprintf("ctx err: %v", jobCtx.Err()), nil
	})

	// Submit may observe either the result or the caller's cancellation
	if err == nil {
		assert.Equal(t, "ctx err: <nil>", status)
	} else {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestQueueFull(t *testing.T) {
	q := New(1)
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_, _ = q.Submit(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "", nil
		})
	}()
	<-started

	go func() {
		_, _ = q.Submit(context.Background(), func(ctx context.Context) (string, error) { return "", nil })
	}()
	require.Eventually(t, func() bool { return q.Pending() == 1 }, time.Second, time.Millisecond)

	_, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) { return "", nil })
	assert.ErrorIs(t, err, domain.ErrQueueFull)

	close(release)
}

func TestSubmitAfterClose(t *testing.T) {
	q := New(1)
	q.Close()
	q.Close()

	_, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) { return "", nil })
	assert.ErrorIs(t, err, domain.ErrQueueClosed)
}

func TestPanickingJob(t *testing.T) {
	q := New(1)
	defer q.Close()

	_, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) {
		panic("pen fell off the desk")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	status, err := q.Submit(context.Background(), func(ctx context.Context) (string, error) { return "still alive", nil })
	require.NoError(t, err)
	assert.Equal(t, "still alive", status)
}
