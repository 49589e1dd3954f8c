package queue

import "sync"

// Async wraps a Bounded queue behind a mutex for sharing across
// goroutines. Semantics match Bounded with one deliberate difference:
// Take on an empty queue returns a zero value and false instead of an
// error, so concurrent consumers can poll without error plumbing.
type Async[T any] struct {
	mu sync.Mutex
	q  *Bounded[T]
}

// NewAsync returns an empty concurrency-safe queue holding at most limit
// items.
func NewAsync[T any](limit int) *Async[T] {
	return &Async[T]{q: NewBounded[T](limit)}
}

// Push appends item, evicting from the front if full, and returns the new
// size.
func (a *Async[T]) Push(item T) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Push(item)
}

// Enqueue appends item and reports any forced eviction.
func (a *Async[T]) Enqueue(item T) EvictionResult[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Enqueue(item)
}

// Take removes and returns the front item. The second result is false when
// the queue is empty.
func (a *Async[T]) Take() (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	item, err := a.q.Take()
	return item, err == nil
}

// Dequeue is an alias for Take.
func (a *Async[T]) Dequeue() (T, bool) {
	return a.Take()
}

// Peek returns the front item without removing it.
func (a *Async[T]) Peek() (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Peek()
}

// Shrink lowers the limit, evicting until the size fits.
func (a *Async[T]) Shrink(newLimit int, evictFromBack bool) EvictionResult[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Shrink(newLimit, evictFromBack)
}

// Extend raises the limit and enqueues the supplied items.
func (a *Async[T]) Extend(newLimit int, items ...T) EvictionResult[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Extend(newLimit, items...)
}

// Len returns the current number of items.
func (a *Async[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Len()
}

// Limit returns the current capacity limit.
func (a *Async[T]) Limit() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Limit()
}

// Items returns a copy of the queued items in front-to-back order.
func (a *Async[T]) Items() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.q.Items()
}
