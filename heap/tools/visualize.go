package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/heap"
)

func visualizeHeap(ctx context.Context, cmd *cli.Command) error {
	items, err := intArgs(cmd)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("usage: visualize [--max] item1 [item2 ...]")
	}

	h := buildIntHeap(cmd.Bool("max"), items)
	fmt.Println(h.String())
	return nil
}

func intArgs(cmd *cli.Command) ([]int, error) {
	args := cmd.Args().Slice()

	out := make([]int, 0, len(args))
	for _, arg := range args {
		item, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid item %q", arg)
		}
		out = append(out, item)
	}
	return out, nil
}

func buildIntHeap(max bool, items []int) heap.Heap[int] {
	if max {
		return heap.NewMaxHeap(items...)
	}
	return heap.NewMinHeap(items...)
}
