package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/appybrain-client/internal/adapter"
	"github.com/MKhiriev/appybrain-client/internal/logger"
)

const defaultSessionCheckInterval = 5 * time.Minute

type sessionWatchJob struct {
	client        adapter.SessionClient
	interval      time.Duration
	onInvalidated func()
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatchJob creates a job that calls ValidateSession on a ticker.
// onInvalidated (may be nil) is called once per check that finds the
// session dropped by the backend. The job is idle until Run is called. If
// interval is zero or negative it defaults to 5 minutes.
func NewSessionWatchJob(client adapter.SessionClient, interval time.Duration, onInvalidated func(), log *logger.Logger) SessionWatchJob {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	if onInvalidated == nil {
		onInvalidated = func() {}
	}
	return &sessionWatchJob{client: client, interval: interval, onInvalidated: onInvalidated, logger: log}
}

// Run stops any previously running loop, then launches a goroutine that
// checks the session every interval until Stop is called.
func (j *sessionWatchJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *sessionWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionWatchJob) check(ctx context.Context) {
	if j.client.Session().IsEmpty() {
		return
	}

	if _, ok := j.client.ValidateSession(ctx); ok {
		j.logger.Debug().Str("func", "sessionWatchJob.check").Msg("session confirmed")
		return
	}

	if ctx.Err() != nil {
		return
	}

	if j.client.Session().IsEmpty() {
		j.logger.Warn().Str("func", "sessionWatchJob.check").Msg("session invalidated by backend")
		j.onInvalidated()
		return
	}

	j.logger.Debug().Str("func", "sessionWatchJob.check").Msg("session not confirmed, kept")
}
