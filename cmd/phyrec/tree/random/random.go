// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package random implements a command
// to build random trees.
package random

import (
	"fmt"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/newick"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var Command = &command.Command{
	Usage: `random [--leaves <number>] [--trees <number>]
	[--seed <number>] [--max <value>]`,
	Short: "build random trees",
	Long: `
Command random builds one or more random binary trees, and prints them in
newick format in the standard output.

The terminals of the trees are named with numbers, starting from 0. Use the
flag --leaves to set the number of terminals; the default is 10. Use the flag
--trees to set the number of trees; the default is 1.

Branch lengths are drawn from a uniform distribution between 0 and the value
set with the flag --max; the default is 0.8.

By default, the random seed is taken from the clock. Use the flag --seed to
set a seed, so the same trees can be built again.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var leaves int
var numTrees int
var seed uint64
var maxLen float64

func setFlags(c *command.Command) {
	c.Flags().IntVar(&leaves, "leaves", 10, "")
	c.Flags().IntVar(&numTrees, "trees", 1, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().Float64Var(&maxLen, "max", 0.8, "")
}

func run(c *command.Command, args []string) error {
	if leaves < 1 {
		return c.UsageError(fmt.Sprintf("invalid number of leaves: %d", leaves))
	}
	if maxLen < 0 {
		return c.UsageError(fmt.Sprintf("invalid maximum branch length: %.6f", maxLen))
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	src := rand.NewSource(seed)
	dist := distuv.Uniform{
		Min: 0,
		Max: maxLen,
		Src: src,
	}
	for range numTrees {
		t := bintree.Random(leaves, src, dist)
		fmt.Fprintf(c.Stdout(), "%s\n", newick.String(t, true))
	}
	return nil
}
