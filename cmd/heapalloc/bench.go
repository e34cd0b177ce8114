// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cznic/heapalloc/heap"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized alloc/free/realloc workload and report counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := heap.NewAllocator(heap.NewMemRegion())
			if err != nil {
				return err
			}

			live, err := runWorkload(h, viper.GetInt64("bench.seed"), viper.GetInt("bench.ops"), viper.GetInt64("bench.max-size"))
			if err != nil {
				return err
			}

			stats := h.Stats()
			log.WithFields(map[string]interface{}{
				"allocs": stats.Allocs,
				"frees":  stats.Frees,
				"region": stats.RegionLen,
				"live":   len(live),
			}).Info("workload complete")
			fmt.Printf("allocs=%d frees=%d live=%d region_bytes=%d\n", stats.Allocs, stats.Frees, len(live), stats.RegionLen)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64("seed", 1, "PRNG seed")
	flags.Int("ops", 10000, "number of allocate/free/realloc operations to run")
	flags.Int64("max-size", 2048, "exclusive upper bound on requested byte counts")
	bindFlags("bench", flags, "seed", "ops", "max-size")
	return cmd
}
