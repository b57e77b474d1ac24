// Package mainloop hands work from background goroutines to the UI loop.
package mainloop

import "sync"

// Coalescer merges bursts of posted values into at most one pending value.
// A newer value replaces one the UI loop has not consumed yet, and Post never
// blocks.
type Coalescer[T any] struct {
	mu        sync.Mutex
	ch        chan T
	destroyed bool
}

func NewCoalescer[T any]() *Coalescer[T] {
	return &Coalescer[T]{ch: make(chan T, 1)}
}

// Post queues v, dropping any value still pending.
func (c *Coalescer[T]) Post(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	select {
	case <-c.ch:
	default:
	}
	c.ch <- v
}

// C returns the channel the UI loop receives from. It is closed by Destroy.
func (c *Coalescer[T]) C() <-chan T {
	return c.ch
}

// Destroy drops pending work and closes the channel. Later posts are ignored.
func (c *Coalescer[T]) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	c.destroyed = true
	close(c.ch)
}
