package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/util"
)

func sortItems(ctx context.Context, cmd *cli.Command) error {
	items, err := intArgs(cmd)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("usage: sort [--max] item1 [item2 ...]")
	}

	h := buildIntHeap(cmd.Bool("max"), items)

	parts := make([]string, 0, len(items))
	for _, item := range util.Collect(h.Drain()) {
		parts = append(parts, fmt.Sprint(item))
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}
