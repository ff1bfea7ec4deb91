package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/heap"
)

// shuffleUUIDs orders freshly generated random IDs through a custom
// predicate, as a smoke test of non-primitive orderings.
func shuffleUUIDs(ctx context.Context, cmd *cli.Command) error {
	count := int(cmd.Uint("count"))

	h := heap.NewHeap(func(a, b uuid.UUID) bool {
		return a.String() <= b.String()
	})
	for range count {
		h.Insert(uuid.Must(uuid.NewRandom()))
	}

	for id := range h.Drain() {
		fmt.Println(id)
	}
	return nil
}
