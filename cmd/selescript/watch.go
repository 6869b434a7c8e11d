package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/kdouveno/selescript/internal/host"
	"github.com/kdouveno/selescript/internal/logging"
)

// settleDelay absorbs the burst of events a single save produces.
const settleDelay = 100 * time.Millisecond

// watchLoop calls preview once, then again each time path shows up on
// changes. It returns when ctx ends or a prompt is cancelled. Other preview
// errors have already been reported and keep the loop alive.
func watchLoop(ctx context.Context, path string, changes <-chan string, settle time.Duration, logger *logging.Logger, preview func(context.Context) error) error {
	path = filepath.Clean(path)
	for {
		if err := preview(ctx); err != nil {
			if ctx.Err() != nil || host.IsCancelled(err) {
				return nil
			}
			logger.Debug("preview failed: %v", err)
		}
		if !waitChange(ctx, path, changes, settle) {
			return nil
		}
		logger.Debug("%s changed", path)
	}
}

// waitChange blocks until path changes and the events settle. It returns
// false if ctx ends first.
func waitChange(ctx context.Context, path string, changes <-chan string, settle time.Duration) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case p := <-changes:
			if filepath.Clean(p) != path {
				continue
			}
		}

		timer := time.NewTimer(settle)
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return false
			case <-changes:
			case <-timer.C:
				return true
			}
		}
	}
}
