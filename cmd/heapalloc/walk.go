// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cznic/heapalloc/heap"
)

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Run a workload, then print every block in address order",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := heap.NewAllocator(heap.NewMemRegion())
			if err != nil {
				return err
			}

			if _, err := runWorkload(h, viper.GetInt64("walk.seed"), viper.GetInt("walk.ops"), viper.GetInt64("walk.max-size")); err != nil {
				return err
			}

			allocated := color.New(color.FgRed)
			free := color.New(color.FgGreen)
			var i int
			h.Walk(func(b heap.Block) bool {
				line := fmt.Sprintf("[%3d] addr=%#06x size=%4d prev_alloc=%v", i, b.Header, b.Size, b.PrevAlloc)
				if b.Alloc {
					allocated.Println(line + " alloc")
				} else {
					free.Println(line + " free")
				}
				i++
				return true
			})
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64("seed", 1, "PRNG seed")
	flags.Int("ops", 200, "number of allocate/free/realloc operations to run before dumping")
	flags.Int64("max-size", 512, "exclusive upper bound on requested byte counts")
	bindFlags("walk", flags, "seed", "ops", "max-size")
	return cmd
}
