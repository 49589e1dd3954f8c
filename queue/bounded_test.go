package queue

import (
	"reflect"
	"testing"

	"github.com/kbukum/arrkit/errors"
)

func TestPushReturnsSize(t *testing.T) {
	q := NewBounded[int](3)
	if got := q.Push(1); got != 1 {
		t.Errorf("Push = %d, want 1", got)
	}
	if got := q.Push(2); got != 2 {
		t.Errorf("Push = %d, want 2", got)
	}
}

func TestPushEvictsOldest(t *testing.T) {
	q := NewBounded[int](2)
	q.Push(1)
	q.Push(2)
	if got := q.Push(3); got != 2 {
		t.Errorf("Push on full queue = %d, want 2", got)
	}
	if !reflect.DeepEqual(q.Items(), []int{2, 3}) {
		t.Errorf("Items() = %v, want [2 3]", q.Items())
	}
}

func TestEnqueueReportsEviction(t *testing.T) {
	q := NewBounded[string](2)

	res := q.Enqueue("a")
	if res.ExceededBounds || len(res.Evicted) != 0 || res.Size != 1 || res.Limit != 2 {
		t.Errorf("Enqueue within bounds = %+v", res)
	}

	q.Enqueue("b")
	res = q.Enqueue("c")
	if !res.ExceededBounds {
		t.Error("expected ExceededBounds")
	}
	if !reflect.DeepEqual(res.Evicted, []string{"a"}) {
		t.Errorf("Evicted = %v, want [a]", res.Evicted)
	}
	if res.Size != 2 || res.Limit != 2 {
		t.Errorf("Size/Limit = %d/%d, want 2/2", res.Size, res.Limit)
	}
}

func TestSizeNeverExceedsLimit(t *testing.T) {
	q := NewBounded[int](3)
	for i := 0; i < 10; i++ {
		q.Push(i)
		if q.Len() > q.Limit() {
			t.Fatalf("size %d exceeds limit %d after push %d", q.Len(), q.Limit(), i)
		}
	}
	if !reflect.DeepEqual(q.Items(), []int{7, 8, 9}) {
		t.Errorf("Items() = %v, want [7 8 9]", q.Items())
	}
}

func TestTake(t *testing.T) {
	q := NewBounded[int](3)
	q.Push(1)
	q.Push(2)

	item, err := q.Take()
	if err != nil || item != 1 {
		t.Errorf("Take = %d, %v, want 1, nil", item, err)
	}
	item, err = q.Dequeue()
	if err != nil || item != 2 {
		t.Errorf("Dequeue = %d, %v, want 2, nil", item, err)
	}

	_, err = q.Take()
	if !errors.IsCode(err, errors.CodeEmptyQueue) {
		t.Errorf("Take on empty queue = %v, want empty queue error", err)
	}
}

func TestPeek(t *testing.T) {
	q := NewBounded[int](3)
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue reported a value")
	}
	q.Push(7)
	item, ok := q.Peek()
	if !ok || item != 7 {
		t.Errorf("Peek = %d, %t, want 7, true", item, ok)
	}
	if q.Len() != 1 {
		t.Error("Peek removed the item")
	}
}

func TestShrinkEvictsFromFront(t *testing.T) {
	q := NewBounded[int](5)
	for i := 1; i <= 5; i++ {
		q.Push(i)
	}
	res := q.Shrink(2, false)
	if !res.ExceededBounds {
		t.Error("expected ExceededBounds")
	}
	if !reflect.DeepEqual(res.Evicted, []int{1, 2, 3}) {
		t.Errorf("Evicted = %v, want [1 2 3]", res.Evicted)
	}
	if res.Size != 2 || res.Limit != 2 {
		t.Errorf("Size/Limit = %d/%d, want 2/2", res.Size, res.Limit)
	}
	if !reflect.DeepEqual(q.Items(), []int{4, 5}) {
		t.Errorf("Items() = %v, want [4 5]", q.Items())
	}
}

func TestShrinkEvictsFromBack(t *testing.T) {
	q := NewBounded[int](4)
	for i := 1; i <= 4; i++ {
		q.Push(i)
	}
	res := q.Shrink(2, true)
	if !reflect.DeepEqual(res.Evicted, []int{4, 3}) {
		t.Errorf("Evicted = %v, want [4 3]", res.Evicted)
	}
	if !reflect.DeepEqual(q.Items(), []int{1, 2}) {
		t.Errorf("Items() = %v, want [1 2]", q.Items())
	}
}

func TestShrinkWithinBounds(t *testing.T) {
	q := NewBounded[int](5)
	q.Push(1)
	res := q.Shrink(3, false)
	if res.ExceededBounds || len(res.Evicted) != 0 || res.Size != 1 || res.Limit != 3 {
		t.Errorf("Shrink without evictions = %+v", res)
	}
}

func TestShrinkNeverRaisesLimit(t *testing.T) {
	q := NewBounded[int](2)
	q.Shrink(10, false)
	if q.Limit() != 2 {
		t.Errorf("Limit = %d, want 2", q.Limit())
	}
}

func TestExtendRaisesLimit(t *testing.T) {
	q := NewBounded[int](2)
	q.Push(1)
	q.Push(2)
	res := q.Extend(4, 3, 4)
	if res.ExceededBounds || len(res.Evicted) != 0 {
		t.Errorf("Extend within new bounds = %+v", res)
	}
	if res.Size != 4 || res.Limit != 4 {
		t.Errorf("Size/Limit = %d/%d, want 4/4", res.Size, res.Limit)
	}
}

func TestExtendNeverLowersLimit(t *testing.T) {
	q := NewBounded[int](4)
	q.Extend(2)
	if q.Limit() != 4 {
		t.Errorf("Limit = %d, want 4", q.Limit())
	}
}

func TestExtendAccumulatesEvictions(t *testing.T) {
	q := NewBounded[int](2)
	q.Push(1)
	q.Push(2)
	res := q.Extend(2, 3, 4)
	if !res.ExceededBounds {
		t.Error("expected ExceededBounds")
	}
	if !reflect.DeepEqual(res.Evicted, []int{1, 2}) {
		t.Errorf("Evicted = %v, want [1 2]", res.Evicted)
	}
	if !reflect.DeepEqual(q.Items(), []int{3, 4}) {
		t.Errorf("Items() = %v, want [3 4]", q.Items())
	}
}

func TestNewBoundedClampsLimit(t *testing.T) {
	q := NewBounded[int](0)
	if q.Limit() != 1 {
		t.Errorf("Limit = %d, want 1", q.Limit())
	}
	q.Push(1)
	res := q.Enqueue(2)
	if !reflect.DeepEqual(res.Evicted, []int{1}) {
		t.Errorf("Evicted = %v, want [1]", res.Evicted)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	q := NewBounded[int](3)
	q.Push(1)
	items := q.Items()
	items[0] = 99
	if got, _ := q.Peek(); got != 1 {
		t.Error("Items exposed internal storage")
	}
}
