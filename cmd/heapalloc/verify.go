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

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run a workload, then check every heap invariant and report violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := heap.NewAllocator(heap.NewMemRegion())
			if err != nil {
				return err
			}

			if _, err := runWorkload(h, viper.GetInt64("verify.seed"), viper.GetInt("verify.ops"), viper.GetInt64("verify.max-size")); err != nil {
				return err
			}

			var n int
			h.Verify(func(e error) bool {
				n++
				fmt.Println(e)
				return true
			})
			if n > 0 {
				return fmt.Errorf("heap failed verification: %d violation(s)", n)
			}

			log.Info("heap verified clean")
			fmt.Println("ok")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int64("seed", 1, "PRNG seed")
	flags.Int("ops", 5000, "number of allocate/free/realloc operations to run before verifying")
	flags.Int64("max-size", 2048, "exclusive upper bound on requested byte counts")
	bindFlags("verify", flags, "seed", "ops", "max-size")
	return cmd
}
