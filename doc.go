// Package sharedchan provides a multi-producer, multi-consumer FIFO
// channel with cloneable endpoints on both sides.
//
// A channel is created with [New], which returns a [Sender] and a
// [Receiver]. Both handles can be cloned and every clone may be used from
// its own goroutine. Each message is delivered to exactly one receiving
// call, and messages from a single sender are received in the order they
// were sent.
//
//	tx, rx := sharedchan.New[int]()
//
//	for i := 0; i < 10; i++ {
//		rx := rx.Clone()
//		go func() {
//			v, err := rx.Recv()
//			if err != nil {
//				return
//			}
//			fmt.Println(v)
//		}()
//	}
//
//	for i := 0; i < 10; i++ {
//		tx.Send(i)
//	}
//
// Handles are closed explicitly with Close. Once every Sender clone is
// closed and the queue has drained, all receive calls report
// [ErrDisconnected], permanently. Once every Receiver clone is closed,
// Send fails with a [*SendError] carrying the undelivered value.
//
// Recv blocks until a message arrives or the channel disconnects; it
// cannot be cancelled. TryRecv and Send never block.
//
// More examples, see examples directory.
package sharedchan
