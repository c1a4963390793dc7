package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/appybrain-client/internal/logger"
)

// Task is a unit of work executed by a [Queue].
type Task func(ctx context.Context) error

type queuedTask struct {
	ctx    context.Context
	fn     Task
	result chan error
}

// Queue executes tasks one at a time, strictly in the order they were
// enqueued. A task starts only after the previous one has completed, and a
// failed or panicking task never blocks the tasks behind it.
//
// The zero value is not usable; create queues with [NewQueue].
type Queue struct {
	log *logger.Logger

	mu      sync.Mutex
	pending []*queuedTask
	running bool
	stopped bool

	notify   chan struct{}
	finished chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewQueue(log *logger.Logger) *Queue {
	if log == nil {
		log = logger.Nop()
	}
	return &Queue{
		log:      log,
		notify:   make(chan struct{}, 1),
		finished: make(chan struct{}),
	}
}

// Run starts the worker goroutine. Tasks enqueued before Run wait for it.
func (q *Queue) Run() {
	q.startOnce.Do(func() {
		q.mu.Lock()
		if q.stopped {
			q.mu.Unlock()
			return
		}
		q.running = true
		q.mu.Unlock()

		go q.loop()
	})
}

// Stop fails every pending task with [ErrQueueStopped] and waits for the
// task currently executing, if any. Tasks enqueued after Stop fail
// immediately.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.stopped = true
		running := q.running
		var orphaned []*queuedTask
		if !running {
			orphaned = q.pending
			q.pending = nil
		}
		q.mu.Unlock()

		if !running {
			failAll(orphaned, ErrQueueStopped)
			return
		}

		q.signal()
		<-q.finished
	})
}

// Enqueue appends fn to the queue and returns a channel that receives its
// result exactly once. The position in the queue is fixed when Enqueue
// returns, so calls made one after another run in that order.
//
// If ctx is already done when the task reaches the head of the queue, the
// task is skipped and completes with ctx.Err().
func (q *Queue) Enqueue(ctx context.Context, fn Task) <-chan error {
	t := &queuedTask{ctx: ctx, fn: fn, result: make(chan error, 1)}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		t.result <- ErrQueueStopped
		return t.result
	}
	q.pending = append(q.pending, t)
	q.mu.Unlock()

	q.signal()
	return t.result
}

// Do enqueues fn and waits for its result. If ctx ends first, Do returns
// ctx.Err(); the task still keeps its place and observes the same ctx.
func (q *Queue) Do(ctx context.Context, fn Task) error {
	result := q.Enqueue(ctx, fn)
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len reports the number of tasks waiting to start.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *Queue) loop() {
	defer close(q.finished)

	for {
		q.mu.Lock()
		if q.stopped {
			orphaned := q.pending
			q.pending = nil
			q.mu.Unlock()
			failAll(orphaned, ErrQueueStopped)
			return
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			<-q.notify
			continue
		}
		t := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		t.result <- q.execute(t)
	}
}

func (q *Queue) execute(t *queuedTask) (err error) {
	if err := t.ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			q.log.Error().Str("func", "Queue.execute").Interface("panic", r).Msg("queued task panicked")
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return t.fn(t.ctx)
}

func failAll(tasks []*queuedTask, err error) {
	for _, t := range tasks {
		t.result <- err
	}
}
