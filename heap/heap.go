package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/navijation/njheap/util"
)

// Heap is an array-backed binary heap ordered by a predicate fixed at
// construction time. It supports O(log n) insertion and extraction of the
// extremal item, and O(n) bulk construction. Not safe for concurrent use;
// callers sharing a heap across goroutines must synchronize externally.
type Heap[T any] struct {
	lessOrEqual func(a, b T) bool
	items       []T
}

// NewHeap builds a heap over an arbitrary ordering predicate. lessOrEqual
// reports whether a may precede b; it must be a total preorder, though it
// need not be strict, so duplicates are fine. Initial items are copied into
// owned storage and heapified before the heap is returned.
func NewHeap[T any](lessOrEqual func(a, b T) bool, items ...T) Heap[T] {
	out := Heap[T]{
		lessOrEqual: lessOrEqual,
		items:       slices.Clone(items),
	}
	out.Heapify(out.items)
	return out
}

// NewMinHeap builds a heap whose root is the smallest item.
func NewMinHeap[T constraints.Ordered](items ...T) Heap[T] {
	return NewHeap(func(a, b T) bool {
		return a <= b
	}, items...)
}

// NewMaxHeap builds a heap whose root is the largest item.
func NewMaxHeap[T constraints.Ordered](items ...T) Heap[T] {
	return NewHeap(func(a, b T) bool {
		return a >= b
	}, items...)
}

func (me *Heap[T]) Size() int {
	return len(me.items)
}

func (me *Heap[T]) IsEmpty() bool {
	return len(me.items) == 0
}

// Peek returns the root item without removing it. It fails with
// ErrEmptyHeap when the heap has no items.
func (me *Heap[T]) Peek() (out T, _ error) {
	if me.IsEmpty() {
		return out, ErrEmptyHeap
	}
	return me.items[0], nil
}

// TryPeek is Peek for callers that prefer an optional to an error check.
func (me *Heap[T]) TryPeek() util.Optional[T] {
	if me.IsEmpty() {
		return util.None[T]()
	}
	return util.Some(me.items[0])
}

// Pop removes and returns the root item. It fails with ErrEmptyHeap when
// the heap has no items; a failed pop leaves the heap unchanged.
func (me *Heap[T]) Pop() (out T, _ error) {
	if me.IsEmpty() {
		return out, ErrEmptyHeap
	}

	out = me.items[0]
	last := me.items[len(me.items)-1]
	me.items = me.items[:len(me.items)-1]
	if len(me.items) > 0 {
		me.items[0] = last
		me.siftDown(me.items, 0)
	}
	return out, nil
}

// Insert adds one item and restores the heap invariant. It always
// succeeds. Relative order of equal items is not preserved.
func (me *Heap[T]) Insert(item T) {
	me.items = append(me.items, item)
	me.siftUp(me.items, len(me.items)-1)
}

// Drain pops items until the heap is empty, yielding them in extremal
// order. Stopping early leaves the remaining items in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !me.IsEmpty() {
			item, _ := me.Pop()
			if !yield(item) {
				return
			}
		}
	}
}
