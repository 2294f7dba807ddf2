package sharedchan

import (
	"sync"
	"testing"
)

func TestIterYieldsInOrderAndStops(t *testing.T) {
	tx, rx := New[int]()

	want := []int{1, 2, 3, 4, 5}
	for _, v := range want {
		if err := tx.Send(v); err != nil {
			t.Fatalf("send: want nil, got %v", err)
		}
	}
	tx.Close()

	it := rx.Iter()
	got := make([]int, 0, len(want))
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}

	if len(got) != len(want) {
		t.Fatalf("want %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: want %d, got %d", i, want[i], got[i])
		}
	}

	// exhausted for good
	if _, ok := it.Next(); ok {
		t.Errorf("want exhausted iterator, got another value")
	}
}

func TestIterAcrossClones(t *testing.T) {
	tx, rx := New[int]()

	const (
		consumers = 4
		total     = 400
	)

	var (
		mu    sync.Mutex
		count int
	)

	var wg sync.WaitGroup
	wg.Add(consumers)
	for i := 0; i < consumers; i++ {
		rx := rx.Clone()
		go func() {
			defer wg.Done()
			it := rx.Iter()
			for _, ok := it.Next(); ok; _, ok = it.Next() {
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < total; i++ {
		if err := tx.Send(i); err != nil {
			t.Fatalf("send: want nil, got %v", err)
		}
	}
	tx.Close()
	wg.Wait()

	if count != total {
		t.Errorf("want %d values consumed, got %d", total, count)
	}
}
