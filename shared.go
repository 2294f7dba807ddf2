package sharedchan

import (
	"errors"
	"sync"
	"sync/atomic"
)

// shared is the receive state held jointly by every Receiver clone of one
// channel: the queue's single-consumer pop side behind a mutex, plus the
// clone refcount. At most one goroutine is ever inside tryPop at a time.
type shared[T any] struct {
	mu   sync.Mutex
	q    *queue[T]
	refs atomic.Int64
}

func newShared[T any](q *queue[T]) *shared[T] {
	s := &shared[T]{q: q}
	s.refs.Store(1)
	return s
}

// recv blocks until a message is taken or the channel disconnects.
//
// The guard is never held across the wait. Each pass takes the mutex only
// for one non-blocking pop attempt; on empty it releases the mutex, parks
// on the queue's condition, then loops to re-attempt under the mutex.
// Waiting outside the guard keeps other clones' TryRecv calls live, and
// re-attempting under the guard after a wake-up means two woken
// goroutines can never both take the same message: the loser just sees an
// empty queue and parks again.
func (s *shared[T]) recv() (T, error) {
	for {
		s.mu.Lock()
		v, err := s.q.tryPop()
		s.mu.Unlock()

		if err == nil || errors.Is(err, ErrDisconnected) {
			return v, err
		}
		s.q.wait()
	}
}

// tryRecv performs exactly one guarded pop attempt and never blocks
// beyond that single queue operation.
func (s *shared[T]) tryRecv() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.tryPop()
}
