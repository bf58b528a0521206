// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// DefaultResyncInterval is used when the configured interval is not positive.
const DefaultResyncInterval = 30 * time.Second

// ResyncJob periodically retries store updates of out-of-sync todos.
type ResyncJob struct {
	resyncer Resyncer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResyncJob creates a job that calls resyncer.Resync every interval while
// anything is out of sync. The job is idle until Start is called.
func NewResyncJob(resyncer Resyncer, interval time.Duration, log *logger.Logger) *ResyncJob {
	if interval <= 0 {
		interval = DefaultResyncInterval
	}
	return &ResyncJob{resyncer: resyncer, interval: interval, logger: log}
}

// Start implements [Worker]. Any previously running job is stopped first.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *ResyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
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
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *ResyncJob) tick(ctx context.Context) {
	stale := len(j.resyncer.OutOfSync())
	if stale == 0 {
		return
	}

	if err := j.resyncer.Resync(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "ResyncJob.tick").Int("stale", stale).Msg("resync incomplete")
		return
	}
	j.logger.Info().Str("func", "ResyncJob.tick").Int("resynced", stale).Msg("out-of-sync todos stored")
}

// Stop implements [Worker].
func (j *ResyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
