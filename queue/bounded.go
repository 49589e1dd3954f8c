package queue

import (
	"github.com/kbukum/arrkit/errors"
	"github.com/kbukum/arrkit/logger"
)

var log = logger.WithComponent("queue")

// EvictionResult describes the capacity effect of a queue mutation. Every
// operation that can evict returns one, so callers can recover evicted
// items instead of losing them silently.
type EvictionResult[T any] struct {
	// ExceededBounds reports whether the operation pushed the queue past
	// its limit and forced at least one eviction.
	ExceededBounds bool `json:"exceeded_bounds"`
	// Evicted holds the evicted items in eviction order.
	Evicted []T `json:"evicted,omitempty"`
	// Size is the queue's size after the operation.
	Size int `json:"size"`
	// Limit is the queue's limit after the operation.
	Limit int `json:"limit"`
}

// Bounded is a FIFO queue that never holds more than limit items. Inserting
// into a full queue evicts from the front. Bounded is not safe for
// concurrent use; wrap it in Async when sharing across goroutines.
type Bounded[T any] struct {
	items []T
	limit int
}

// NewBounded returns an empty queue holding at most limit items. Limits
// below 1 are clamped to 1 with a warning.
func NewBounded[T any](limit int) *Bounded[T] {
	if limit < 1 {
		log.Warn("queue limit below 1, clamping to 1",
			logger.Fields(logger.FieldLimit, limit))
		limit = 1
	}
	return &Bounded[T]{limit: limit}
}

// Push appends item, evicting one item from the front if the queue is full,
// and returns the new size.
func (q *Bounded[T]) Push(item T) int {
	return q.Enqueue(item).Size
}

// Enqueue appends item and reports whether the insertion forced an
// eviction, including the evicted item itself.
func (q *Bounded[T]) Enqueue(item T) EvictionResult[T] {
	q.items = append(q.items, item)
	res := EvictionResult[T]{Size: len(q.items), Limit: q.limit}
	if len(q.items) > q.limit {
		res.ExceededBounds = true
		res.Evicted = []T{q.items[0]}
		q.items = q.items[1:]
		res.Size = len(q.items)
	}
	return res
}

// Take removes and returns the front item. Fails when the queue is empty.
func (q *Bounded[T]) Take() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, errors.EmptyQueue()
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, nil
}

// Dequeue is an alias for Take.
func (q *Bounded[T]) Dequeue() (T, error) {
	return q.Take()
}

// Peek returns the front item without removing it. The second result is
// false when the queue is empty.
func (q *Bounded[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Shrink lowers the limit and evicts until the size fits, from the front by
// default or from the back when evictFromBack is set. Limits below 1 are
// clamped to 1. Raising the limit through Shrink is a no-op; use Extend.
func (q *Bounded[T]) Shrink(newLimit int, evictFromBack bool) EvictionResult[T] {
	if newLimit < 1 {
		log.Warn("queue limit below 1, clamping to 1",
			logger.Fields(logger.FieldLimit, newLimit))
		newLimit = 1
	}
	if newLimit < q.limit {
		q.limit = newLimit
	}
	res := EvictionResult[T]{Limit: q.limit}
	for len(q.items) > q.limit {
		res.ExceededBounds = true
		if evictFromBack {
			res.Evicted = append(res.Evicted, q.items[len(q.items)-1])
			q.items = q.items[:len(q.items)-1]
		} else {
			res.Evicted = append(res.Evicted, q.items[0])
			q.items = q.items[1:]
		}
	}
	res.Size = len(q.items)
	return res
}

// Extend raises the limit to max(limit, newLimit) and enqueues the supplied
// items. It never lowers the limit. Evictions caused by the new items are
// accumulated into the returned result.
func (q *Bounded[T]) Extend(newLimit int, items ...T) EvictionResult[T] {
	if newLimit > q.limit {
		q.limit = newLimit
	}
	res := EvictionResult[T]{Size: len(q.items), Limit: q.limit}
	for _, item := range items {
		r := q.Enqueue(item)
		if r.ExceededBounds {
			res.ExceededBounds = true
			res.Evicted = append(res.Evicted, r.Evicted...)
		}
		res.Size = r.Size
	}
	return res
}

// Len returns the current number of items.
func (q *Bounded[T]) Len() int {
	return len(q.items)
}

// Limit returns the current capacity limit.
func (q *Bounded[T]) Limit() int {
	return q.limit
}

// Items returns a copy of the queued items in front-to-back order.
func (q *Bounded[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}
