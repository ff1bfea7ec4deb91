package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intMin(a, b int) bool { return a <= b }
func intMax(a, b int) bool { return a >= b }

func TestHeapifyFunc_Min(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		items := []int{}
		HeapifyFunc(items, intMin)
		assert.Empty(t, items)
	})

	t.Run("single item", func(t *testing.T) {
		items := []int{1}
		HeapifyFunc(items, intMin)
		assert.Equal(t, []int{1}, items)
	})

	t.Run("two items", func(t *testing.T) {
		items := []int{1, 0}
		HeapifyFunc(items, intMin)
		assert.Equal(t, []int{0, 1}, items)
	})

	t.Run("three items", func(t *testing.T) {
		items := []int{2, 1, 0}
		HeapifyFunc(items, intMin)
		assert.Equal(t, 0, items[0])
		assert.ElementsMatch(t, []int{1, 2}, items[1:])
	})
}

func TestHeapifyFunc_Max(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		items := []int{}
		HeapifyFunc(items, intMax)
		assert.Empty(t, items)
	})

	t.Run("single item", func(t *testing.T) {
		items := []int{1}
		HeapifyFunc(items, intMax)
		assert.Equal(t, []int{1}, items)
	})

	t.Run("two items", func(t *testing.T) {
		items := []int{0, 1}
		HeapifyFunc(items, intMax)
		assert.Equal(t, []int{1, 0}, items)
	})

	t.Run("three items", func(t *testing.T) {
		items := []int{0, 1, 2}
		HeapifyFunc(items, intMax)
		assert.Equal(t, 2, items[0])
		assert.ElementsMatch(t, []int{0, 1}, items[1:])
	})
}

func TestHeap_HeapifyExternalSlice(t *testing.T) {
	h := NewMaxHeap[int]()

	items := []int{2, 9, 4, 7, 1}
	h.Heapify(items)

	assert.Equal(t, 9, items[0])
	for i := range items {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(items) {
				assert.GreaterOrEqual(t, items[i], items[child])
			}
		}
	}

	// the heap's own storage is untouched
	assert.True(t, h.IsEmpty())
}

func TestHeapify_SubtreeRootsExtremal(t *testing.T) {
	items := []int{13, 8, 21, 3, 34, 5, 1, 55, 2, 0, 9, 17}
	HeapifyFunc(items, intMin)

	// every subtree root is the minimum of its subtree
	var subtreeMin func(i int) int
	subtreeMin = func(i int) int {
		out := items[i]
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(items) {
				out = min(out, subtreeMin(child))
			}
		}
		return out
	}
	for i := range items {
		assert.Equal(t, items[i], subtreeMin(i), "subtree rooted at %d", i)
	}
}

func TestHeap_PopOrderingMatchesSort(t *testing.T) {
	input := []int{12, 5, 5, 31, 0, -4, 18, 5, 12, 9, -4, 27, 1}

	t.Run("min drains ascending", func(t *testing.T) {
		h := NewMinHeap(input...)

		var prev int
		for i := 0; !h.IsEmpty(); i++ {
			item, err := h.Pop()
			require.NoError(t, err)
			if i > 0 {
				require.LessOrEqual(t, prev, item)
			}
			prev = item
		}
	})

	t.Run("max drains descending", func(t *testing.T) {
		h := NewMaxHeap(input...)

		var prev int
		for i := 0; !h.IsEmpty(); i++ {
			item, err := h.Pop()
			require.NoError(t, err)
			if i > 0 {
				require.GreaterOrEqual(t, prev, item)
			}
			prev = item
		}
	})

	t.Run("multiplicity preserved", func(t *testing.T) {
		h := NewMinHeap(input...)

		var drained []int
		for !h.IsEmpty() {
			item, err := h.Pop()
			require.NoError(t, err)
			drained = append(drained, item)
		}
		assert.ElementsMatch(t, input, drained)
	})
}
