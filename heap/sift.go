package heap

// HeapifyFunc rearranges items in place into heap order under lessOrEqual.
// It is the constructor-free form of Heap.Heapify.
func HeapifyFunc[T any](items []T, lessOrEqual func(a, b T) bool) {
	h := Heap[T]{lessOrEqual: lessOrEqual}
	h.Heapify(items)
}

// Heapify rearranges an arbitrary slice in place into heap order under the
// heap's ordering. The slice does not need to be the heap's own storage.
// Sifting down every internal node bottom-up makes this O(n) overall,
// rather than the O(n log n) of repeated insertion.
func (me *Heap[T]) Heapify(items []T) {
	if len(items) < 2 {
		return
	}
	for i := len(items)/2 - 1; i >= 0; i-- {
		me.siftDown(items, i)
	}
}

// siftDown pushes the item at index i toward the leaves until it precedes
// both of its children. Both subtrees of i must already be heap-ordered.
func (me *Heap[T]) siftDown(items []T, i int) {
	size := len(items)
	for {
		left := 2*i + 1
		if left >= size {
			// i is a leaf
			break
		}

		child := left
		if right := left + 1; right < size && me.lessOrEqual(items[right], items[left]) {
			child = right
		}

		if !me.lessOrEqual(items[child], items[i]) {
			break
		}
		items[i], items[child] = items[child], items[i]
		i = child
	}
}

// siftUp pulls the item at index i toward the root until its parent
// precedes it.
func (me *Heap[T]) siftUp(items []T, i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if me.lessOrEqual(items[parent], items[i]) {
			break
		}
		items[i], items[parent] = items[parent], items[i]
		i = parent
	}
}
