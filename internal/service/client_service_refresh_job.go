// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/macro-marketplace/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

// catalogRefresher is the part of [ClientCatalogService] the job needs.
type catalogRefresher interface {
	Refresh(ctx context.Context) error
}

type clientRefreshJob struct {
	catalog catalogRefresher
	logger  *logger.Logger

	// mu serializes Start and Stop; at most one run exists at a time.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientRefreshJob creates a job that calls catalog.Refresh on a ticker.
// The job is idle until Start is called.
func NewClientRefreshJob(catalog catalogRefresher, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{catalog: catalog, logger: logger}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a goroutine that refreshes the catalog every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done

	go j.run(jobCtx, interval, done)
}

func (j *clientRefreshJob) run(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := j.catalog.Refresh(ctx); err != nil && ctx.Err() == nil {
				j.logger.Warn().Err(err).Str("func", "clientRefreshJob.run").Msg("catalog refresh failed")
			}
		}
	}
}

// Stop implements ClientRefreshJob. It cancels the goroutine's context and
// blocks until the goroutine has exited. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

func (j *clientRefreshJob) stopLocked() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
	j.cancel = nil
	j.done = nil
}
