package heap

import "errors"

var (
	// ErrEmptyHeap is returned by Pop and Peek on a heap with no items.
	ErrEmptyHeap = errors.New("heap is empty")
)
