package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "heap_tools",
		Usage: "visualize and experiment with binary heaps",
		Commands: []*cli.Command{
			{
				Name:   "visualize",
				Action: visualizeHeap,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "max",
						Usage: "order the heap largest-first",
					},
				},
			},
			{
				Name:   "sort",
				Action: sortItems,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "max",
						Usage: "drain largest-first",
					},
				},
			},
			{
				Name:   "shuffle",
				Action: shuffleUUIDs,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "count",
						DefaultText: "10",
						Value:       10,
						Usage:       "number of random IDs to order",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
