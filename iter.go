package sharedchan

// Iter is a pull-based iterator over a Receiver. Each Next performs a
// blocking Recv, so iteration competes with every other clone for
// messages under the usual exactly-once rule.
type Iter[T any] struct {
	r *Receiver[T]
}

// Iter returns an iterator yielding messages received through r. It stops
// the first time the channel reports disconnection; since disconnection
// is permanent, an exhausted iterator never yields again.
func (r *Receiver[T]) Iter() *Iter[T] {
	return &Iter[T]{r: r}
}

// Next blocks for the next message. ok is false once the channel is
// disconnected.
func (it *Iter[T]) Next() (v T, ok bool) {
	v, err := it.r.Recv()
	return v, err == nil
}
