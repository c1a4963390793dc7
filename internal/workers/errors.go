package workers

import "errors"

var (
	ErrQueueStopped = errors.New("queue is stopped")
	ErrTaskPanicked = errors.New("task panicked")
)
