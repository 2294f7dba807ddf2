package sharedchan

// New creates a channel and returns its initial Sender and Receiver.
// Either handle may be cloned to add producers or consumers.
func New[T any]() (*Sender[T], *Receiver[T]) {
	q := newQueue[T]()
	logger.Debug("sharedchan: channel created")
	return &Sender[T]{q: q}, &Receiver[T]{state: newShared(q)}
}
