package queue

import (
	"sync"
	"testing"
)

func TestAsyncTakeOnEmpty(t *testing.T) {
	q := NewAsync[int](3)
	if _, ok := q.Take(); ok {
		t.Error("Take on empty queue reported a value")
	}
	q.Push(1)
	item, ok := q.Take()
	if !ok || item != 1 {
		t.Errorf("Take = %d, %t, want 1, true", item, ok)
	}
}

func TestAsyncMatchesBoundedSemantics(t *testing.T) {
	q := NewAsync[string](2)
	q.Push("a")
	q.Push("b")
	res := q.Enqueue("c")
	if !res.ExceededBounds || res.Evicted[0] != "a" {
		t.Errorf("Enqueue = %+v", res)
	}
	if item, ok := q.Peek(); !ok || item != "b" {
		t.Errorf("Peek = %q, %t", item, ok)
	}
	q.Shrink(1, false)
	if q.Len() != 1 || q.Limit() != 1 {
		t.Errorf("Len/Limit = %d/%d, want 1/1", q.Len(), q.Limit())
	}
}

func TestAsyncConcurrentPushers(t *testing.T) {
	const (
		workers = 8
		pushes  = 100
		limit   = 10
	)
	q := NewAsync[int](limit)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < pushes; i++ {
				q.Push(w*pushes + i)
			}
		}(w)
	}
	wg.Wait()

	if q.Len() != limit {
		t.Errorf("Len = %d, want %d", q.Len(), limit)
	}
}

func TestAsyncConcurrentMixedOps(t *testing.T) {
	q := NewAsync[int](5)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(i)
				q.Take()
				q.Peek()
			}
		}()
	}
	wg.Wait()
	if q.Len() > q.Limit() {
		t.Errorf("size %d exceeds limit %d", q.Len(), q.Limit())
	}
}
