// Package queue provides a bounded FIFO queue that evicts from the front
// when full.
//
// Every capacity-affecting operation returns an EvictionResult naming the
// evicted items, so callers that must not lose data (log batchers,
// ring-style caches) can flush evictions elsewhere:
//
//	q := queue.NewBounded[string](3)
//	q.Push("a")
//	q.Push("b")
//	q.Push("c")
//	res := q.Enqueue("d")
//	// res.ExceededBounds == true, res.Evicted == ["a"]
//
// Bounded is single-goroutine; Async wraps it behind a mutex for shared
// use, trading Take's error for a found-style bool.
package queue
