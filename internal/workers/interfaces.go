// Package workers provides the background workers of the client: the serial
// request queue and the aggregate used to start and stop every worker
// together.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work itself happens in
// goroutines owned by the worker. Stop ends the work and blocks until those
// goroutines have exited. Both must be safe to call more than once.
type Worker interface {
	Run()
	Stop()
}
