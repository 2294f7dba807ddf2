package sharedchan

import "sync"

// Receiver is the consuming end of a channel. It is safe for concurrent
// use, and Clone yields additional handles with identical capability; all
// clones drain the same queue, with every message going to exactly one of
// them.
type Receiver[T any] struct {
	state *shared[T]

	mu     sync.Mutex
	closed bool
}

// Recv blocks until a message is available and returns it, or returns
// ErrDisconnected once every Sender clone is closed and the queue has
// drained. A Recv on a closed handle returns ErrDisconnected immediately.
func (r *Receiver[T]) Recv() (T, error) {
	if r.isClosed() {
		var zero T
		return zero, ErrDisconnected
	}
	return r.state.recv()
}

// TryRecv returns a message if one is queued right now. It reports
// ErrEmpty when the queue is empty but senders remain, and
// ErrDisconnected once the channel is disconnected. It never blocks.
func (r *Receiver[T]) TryRecv() (T, error) {
	if r.isClosed() {
		var zero T
		return zero, ErrDisconnected
	}
	return r.state.tryRecv()
}

// Len returns a snapshot of the number of queued messages. It may be
// stale by the time it is read under concurrency.
func (r *Receiver[T]) Len() int {
	if r.isClosed() {
		return 0
	}
	return r.state.q.len()
}

// Clone returns a new handle sharing this receiver's channel. Cloning a
// closed handle yields a handle that is already closed.
func (r *Receiver[T]) Clone() *Receiver[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return &Receiver[T]{state: r.state, closed: true}
	}
	r.state.refs.Add(1)
	return &Receiver[T]{state: r.state}
}

// Close releases this handle. It is idempotent. When the last clone is
// closed the channel's receive side is torn down: queued messages are
// discarded and every later Send fails.
func (r *Receiver[T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	if r.state.refs.Add(-1) == 0 {
		r.state.q.dropReceiver()
	}
}

func (r *Receiver[T]) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
