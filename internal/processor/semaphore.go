package processor

import "context"

// semaphore bounds how many turns are chunked at once
type semaphore struct {
	ch chan struct{}
}

// newSemaphore creates a semaphore with at least one slot
func newSemaphore(capacity int) *semaphore {
	if capacity < 1 {
		capacity = 1
	}
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// acquire takes a slot, blocking until one is free or ctx is done
func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release returns a slot
func (s *semaphore) release() {
	<-s.ch
}
