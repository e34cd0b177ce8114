// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heapalloc drives the heap allocator from the command line: it can
// run a synthetic workload (bench), dump the block structure of the
// resulting heap (walk), and check its invariants (verify).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "heapalloc",
		Short:         "Exercise the segregated-free-list heap allocator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(viper.GetString("heapalloc.log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	bindFlags("heapalloc", flags, "log-level")

	root.AddCommand(newBenchCmd(), newWalkCmd(), newVerifyCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("heapalloc failed")
		os.Exit(1)
	}
}
