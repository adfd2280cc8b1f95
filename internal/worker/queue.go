package worker

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

// Job is one unit of work that owns the input devices while it runs
type Job func(ctx context.Context) (string, error)

type outcome struct {
	status string
	err    error
}

type task struct {
	ctx    context.Context
	job    Job
	result chan outcome
}

// Queue runs jobs one at a time in submission order
type Queue struct {
	jobs   chan *task
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts a queue holding at most size waiting jobs
func New(size int) *Queue {
	if size < 1 {
		size = 1
	}
	q := &Queue{jobs: make(chan *task, size)}
	q.wg.Add(1)
	go q.run()
	return q
}

// Submit enqueues job and waits for its result. If ctx ends while the job is
// still waiting, Submit returns ctx.Err() and the job is skipped. A job that
// has started runs to completion.
func (q *Queue) Submit(ctx context.Context, job Job) (string, error) {
	t := &task{ctx: ctx, job: job, result: make(chan outcome, 1)}

	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return "", domain.ErrQueueClosed
	}
	select {
	case q.jobs <- t:
	default:
		q.mu.RUnlock()
		return "", domain.ErrQueueFull
	}
	q.mu.RUnlock()

	select {
	case out := <-t.result:
		return out.status, out.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Pending returns the number of jobs waiting to start
func (q *Queue) Pending() int {
	return len(q.jobs)
}

// Close stops accepting jobs, runs the ones already queued and waits for
// the worker to exit
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) run() {
	defer q.wg.Done()

	for t := range q.jobs {
		if err := t.ctx.Err(); err != nil {
			logger.Debug("Skipping cancelled job", "error", err)
			t.result <- outcome{err: err}
			continue
		}
		t.result <- q.execute(t)
	}
}

func (q *Queue) execute(t *task) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "panic", r)
			out = outcome{err: fmt.Errorf("job panicked: %v", r)}
		}
	}()

	status, err := t.job(context.WithoutCancel(t.ctx))
	return outcome{status: status, err: err}
}
