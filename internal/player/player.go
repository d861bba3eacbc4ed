// Package player replays compiled macros as real key events in a browser page.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/input"
	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/keys"
	"github.com/v0xg/k90macro/internal/macro"
)

// Keyboard is the part of a rod keyboard that playback drives.
type Keyboard interface {
	Press(key input.Key) error
	Release(key input.Key) error
}

// Step describes one replayed event. Elapsed is the macro time at which the
// event finished.
type Step struct {
	Index   int
	Event   macro.Event
	Elapsed time.Duration
	Skipped bool
}

// Options configures playback
type Options struct {
	Sink    *diag.Sink
	Verbose bool
	// Sleep waits for d or until ctx is done. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
	// AfterStep runs after every event, e.g. to capture a frame.
	AfterStep func(Step) error
}

// Play replays events on kb with the macro's timings. Key events the browser
// has no equivalent for are skipped with a warning. Keys still held when
// playback stops are released.
func Play(ctx context.Context, kb Keyboard, events []macro.Event, opts Options) (err error) {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	held := map[input.Key]bool{}
	defer func() {
		for k := range held {
			if rerr := kb.Release(k); rerr != nil && err == nil {
				err = fmt.Errorf("releasing held key: %w", rerr)
			}
		}
	}()

	var elapsed time.Duration
	for i, e := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Verbose {
			fmt.Printf("  [%d/%d] %s\n", i+1, len(events), e)
		}

		skipped := false
		switch e := e.(type) {
		case macro.Delay:
			d := millis(e.Milliseconds)
			if err := sleep(ctx, d); err != nil {
				return err
			}
			elapsed += d

		case macro.KeyDown:
			k, ok := lookup(e.Key, opts.Sink)
			if !ok {
				skipped = true
				break
			}
			if err := kb.Press(k); err != nil {
				return fmt.Errorf("event %d (%s): %w", i, e, err)
			}
			held[k] = true

		case macro.KeyUp:
			k, ok := lookup(e.Key, opts.Sink)
			if !ok {
				skipped = true
				break
			}
			if err := kb.Release(k); err != nil {
				return fmt.Errorf("event %d (%s): %w", i, e, err)
			}
			delete(held, k)

		case macro.KeyTap:
			k, ok := lookup(e.Key, opts.Sink)
			if !ok {
				skipped = true
				break
			}
			if err := kb.Press(k); err != nil {
				return fmt.Errorf("event %d (%s): %w", i, e, err)
			}
			held[k] = true
			d := millis(e.HoldMilliseconds)
			if err := sleep(ctx, d); err != nil {
				return err
			}
			elapsed += d
			if err := kb.Release(k); err != nil {
				return fmt.Errorf("event %d (%s): %w", i, e, err)
			}
			delete(held, k)
		}

		if opts.AfterStep != nil {
			step := Step{Index: i, Event: e, Elapsed: elapsed, Skipped: skipped}
			if err := opts.AfterStep(step); err != nil {
				return err
			}
		}
	}
	return nil
}

func lookup(code keys.Code, sink *diag.Sink) (input.Key, bool) {
	k, ok := BrowserKey(code)
	if !ok {
		sink.Warnf("warning: key %s has no browser equivalent, skipping", code)
	}
	return k, ok
}

func millis(ms uint16) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
