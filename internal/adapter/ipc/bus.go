// Package ipc is an in-process request/reply bus keyed by channel name.
package ipc

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNoHandler is returned by Send for a channel nobody handles.
var ErrNoHandler = errors.New("ipc: no handler for channel")

// Handler answers one request on a channel.
type Handler func(ctx context.Context, args ...string) (string, error)

// Bus implements ports.LocaleTransport.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

// Handle registers h for channel, replacing any previous handler.
func (b *Bus) Handle(channel string, h Handler) {
	b.mu.Lock()
	b.handlers[channel] = h
	b.mu.Unlock()
}

// Send dispatches a request to the channel's handler and waits for its reply
// or for ctx to end, whichever comes first.
func (b *Bus) Send(ctx context.Context, channel string, args ...string) (string, error) {
	b.mu.RLock()
	h, ok := b.handlers[channel]
	b.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w %q", ErrNoHandler, channel)
	}

	type reply struct {
		value string
		err   error
	}
	done := make(chan reply, 1)
	go func() {
		v, err := h(ctx, args...)
		done <- reply{v, err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
