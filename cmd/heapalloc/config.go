// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags registers names from flags with viper under "prefix.name", so
// every setting can also be supplied as a HEAPALLOC_-prefixed environment
// variable - the same flag/env layering vorteil's CLI commands use for
// their own config. Keys are namespaced by prefix (typically the owning
// subcommand's name) so sibling commands can reuse flag names like "seed"
// without one's binding clobbering another's in viper's global registry.
func bindFlags(prefix string, flags *pflag.FlagSet, names ...string) {
	viper.SetEnvPrefix("heapalloc")
	for _, name := range names {
		key := prefix + "." + name
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
		_ = viper.BindEnv(key)
	}
}
