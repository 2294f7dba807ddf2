package sharedchan

import "errors"

var (
	// ErrDisconnected is reported by receive calls once every Sender clone
	// has been closed and the queue has drained, and by any call made
	// through a handle that has itself been closed. It is terminal: once
	// observed on a channel it is observed forever.
	ErrDisconnected = errors.New("sharedchan: channel is disconnected")

	// ErrEmpty is reported by TryRecv when the queue holds no message
	// right now but senders remain alive. It is transient; the caller may
	// retry later.
	ErrEmpty = errors.New("sharedchan: no message available")
)

// SendError is returned by Send when no Receiver clone remains alive.
// Value holds the message that could not be delivered so the caller does
// not silently lose it.
type SendError[T any] struct {
	Value T
}

func (e *SendError[T]) Error() string {
	return "sharedchan: send on a channel with no receivers"
}

// Unwrap makes errors.Is(err, ErrDisconnected) report true for SendError.
func (e *SendError[T]) Unwrap() error {
	return ErrDisconnected
}
