package heap

import (
	"fmt"
	"strings"
)

const renderWidth = 80

// String renders the heap's tree structure for debugging, one line per
// tree level with elements space-separated and each level centered.
func (me *Heap[T]) String() string {
	var rows []string
	for depth := 0; 1<<depth-1 < len(me.items); depth++ {
		start := 1<<depth - 1
		end := min(1<<(depth+1)-1, len(me.items))

		parts := make([]string, 0, end-start)
		for _, item := range me.items[start:end] {
			parts = append(parts, fmt.Sprint(item))
		}

		// left-justify within the level's full slot width so partial
		// bottom levels stay left-aligned once centered
		row := fmt.Sprintf("%-*s", 1<<(depth+1)-1, strings.Join(parts, " "))
		rows = append(rows, center(row, renderWidth))
	}
	return strings.Join(rows, "\n")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
