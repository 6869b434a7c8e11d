package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kdouveno/selescript/internal/host"
	"github.com/kdouveno/selescript/internal/logging"
)

func TestWatchLoopRerunsOnChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 4)
	changes <- "/scripts/other.lua"
	changes <- "/scripts/upper.lua"
	changes <- "/scripts/./upper.lua"

	calls := 0
	ran := make(chan int, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, "/scripts/upper.lua", changes, 20*time.Millisecond, logging.OrNull(nil),
			func(context.Context) error {
				calls++
				ran <- calls
				if calls == 1 {
					return errors.New("syntax error")
				}
				return nil
			})
	}()

	for want := 1; want <= 2; want++ {
		select {
		case got := <-ran:
			if got != want {
				t.Fatalf("preview call %d, want %d", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("preview %d never ran", want)
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop did not stop")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestWatchLoopStopsOnCancelledPrompt(t *testing.T) {
	changes := make(chan string, 1)
	changes <- "/scripts/upper.lua"

	calls := 0
	err := watchLoop(context.Background(), "/scripts/upper.lua", changes, time.Millisecond, logging.OrNull(nil),
		func(context.Context) error {
			calls++
			return host.ErrCancelled
		})
	if err != nil {
		t.Fatalf("watchLoop error = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
