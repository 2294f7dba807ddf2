package sharedchan

import "sync"

// Sender is the producing end of a channel. It is safe for concurrent
// use; Clone yields independent handles feeding the same queue. Messages
// sent through one handle are delivered in send order.
type Sender[T any] struct {
	q *queue[T]

	mu     sync.Mutex
	closed bool
}

// Send enqueues v. It fails with a *SendError carrying v when no Receiver
// clone remains alive, or when this handle has been closed. Send never
// blocks.
func (s *Sender[T]) Send(v T) error {
	if s.isClosed() {
		return &SendError[T]{Value: v}
	}
	return s.q.push(v)
}

// Clone returns a new handle sending into this sender's channel. Cloning
// a closed handle yields a handle that is already closed.
func (s *Sender[T]) Clone() *Sender[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &Sender[T]{q: s.q, closed: true}
	}
	s.q.addSender()
	return &Sender[T]{q: s.q}
}

// Close releases this handle. It is idempotent. When the last clone is
// closed the channel disconnects: receivers drain whatever is queued and
// then observe ErrDisconnected forever.
func (s *Sender[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.q.dropSender()
}

func (s *Sender[T]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
