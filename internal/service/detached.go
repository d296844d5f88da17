package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Effect is a side effect started by an operation but not awaited by it.
type Effect func(ctx context.Context) error

// Detached runs fire-and-forget effects. An effect's error is logged and
// dropped; effects are never retried and never reported to the operation that
// started them.
type Detached struct {
	wg      sync.WaitGroup
	timeout time.Duration
	log     zerolog.Logger

	mu    sync.Mutex
	tails map[string]chan struct{} // last queued effect per ordered name
}

// NewDetached creates an effect runner. A zero timeout leaves effects bounded
// only by their own collaborators.
func NewDetached(timeout time.Duration, log zerolog.Logger) *Detached {
	return &Detached{timeout: timeout, log: log, tails: make(map[string]chan struct{})}
}

// Go starts effect in the background. ctx supplies values only; its
// cancellation does not reach the effect.
func (d *Detached) Go(ctx context.Context, name string, effect Effect) {
	d.start(ctx, name, nil, nil, effect)
}

// GoOrdered starts effect in the background after every effect previously
// queued under the same name has returned. Effects sharing a name therefore
// run one at a time, in the order GoOrdered was called.
func (d *Detached) GoOrdered(ctx context.Context, name string, effect Effect) {
	done := make(chan struct{})

	d.mu.Lock()
	prev := d.tails[name]
	d.tails[name] = done
	d.mu.Unlock()

	d.start(ctx, name, prev, done, effect)
}

func (d *Detached) start(ctx context.Context, name string, prev <-chan struct{}, done chan struct{}, effect Effect) {
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if done != nil {
			defer d.release(name, done)
		}
		if prev != nil {
			<-prev
		}

		// The timeout starts once the effect is allowed to run.
		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		if err := effect(ctx); err != nil {
			d.log.Warn().Err(err).Str("effect", name).Msg("detached effect failed")
		}
	}()
}

func (d *Detached) release(name string, done chan struct{}) {
	close(done)

	d.mu.Lock()
	if d.tails[name] == done {
		delete(d.tails, name)
	}
	d.mu.Unlock()
}

// Wait blocks until every started effect has returned.
func (d *Detached) Wait() {
	d.wg.Wait()
}
