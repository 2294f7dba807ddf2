package sharedchan

import "sync"

// queue is the underlying FIFO shared by every handle of one channel. The
// push side is safe for any number of concurrent senders. The pop side is
// single-consumer: callers must serialize tryPop externally (the shared
// receive state owns that guard). wait may be called from any number of
// goroutines, but never while holding the external guard.
type queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    []T

	// senders is the number of live Sender clones. The channel
	// disconnects once it reaches zero and items drain.
	senders int

	// rxAlive flips to false when the last Receiver clone is closed.
	// After that every push fails and every pop reports disconnected.
	rxAlive bool
}

func newQueue[T any]() *queue[T] {
	q := &queue[T]{
		senders: 1,
		rxAlive: true,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// push appends v in FIFO order and wakes one waiting receiver. It fails
// with a *SendError carrying v once the receive side is gone.
func (q *queue[T]) push(v T) error {
	q.mu.Lock()
	if !q.rxAlive {
		q.mu.Unlock()
		return &SendError[T]{Value: v}
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.notEmpty.Signal()
	return nil
}

// tryPop removes and returns the oldest message without blocking. It
// reports ErrEmpty while senders remain and ErrDisconnected once the
// queue has drained with no sender left, or the receive side is gone.
func (q *queue[T]) tryPop() (T, error) {
	var zero T

	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.rxAlive {
		return zero, ErrDisconnected
	}

	if len(q.items) > 0 {
		v := q.items[0]
		q.items = q.items[1:]
		return v, nil
	}

	if q.senders == 0 {
		return zero, ErrDisconnected
	}
	return zero, ErrEmpty
}

// wait blocks the caller until a message might be available or the
// channel can no longer produce one. A wake-up is a hint, not a claim:
// the caller must retry tryPop and may find another receiver got there
// first.
func (q *queue[T]) wait() {
	q.mu.Lock()
	for len(q.items) == 0 && q.senders > 0 && q.rxAlive {
		q.notEmpty.Wait()
	}
	q.mu.Unlock()
}

func (q *queue[T]) addSender() {
	q.mu.Lock()
	q.senders++
	q.mu.Unlock()
}

// dropSender decrements the live sender count. When the last sender is
// gone every blocked receiver is woken so it can observe disconnection
// once the queue drains.
func (q *queue[T]) dropSender() {
	q.mu.Lock()
	q.senders--
	last := q.senders == 0
	q.mu.Unlock()

	if last {
		q.notEmpty.Broadcast()
		logger.Debug("sharedchan: last sender closed, channel disconnecting")
	}
}

// dropReceiver releases the receive side. Queued messages are discarded,
// subsequent pushes fail and blocked receivers are woken.
func (q *queue[T]) dropReceiver() {
	q.mu.Lock()
	discarded := len(q.items)
	q.items = nil
	q.rxAlive = false
	q.mu.Unlock()

	q.notEmpty.Broadcast()
	logger.Debug("sharedchan: last receiver closed, send side released", "discarded", discarded)
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
