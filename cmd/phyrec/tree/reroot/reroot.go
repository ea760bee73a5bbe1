// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reroot implements a command to change
// the root of a tree in a PhyRec project.
package reroot

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: `reroot [--genes] --tree <tree-name> --node <node>
	[--outgroup] [--split <value>]
	<project-file>`,
	Short: "change the root of a tree",
	Long: `
Command reroot reads a tree from a PhyRec project, and places the root of the
tree on the branch of the indicated node. The distances between the terminals
of the tree are not modified.

The argument of the command is the name of the project file.

The flag --tree is required and sets the tree to be rerooted. By default, the
tree is searched in the species trees, use the flag --genes to search the tree
in the gene trees.

The flag --node is required and sets the node, using the in-order index of the
node (see 'phyrec tree nodes').

By default, the root is placed at the proportion of the branch defined by
the split parameter of the project (see 'phyrec help parameters'). Use the
flag --split to set a different value. If the flag --outgroup is set, the root
is placed just above the node, so the node is attached to the root with a zero
length branch.

The tree file of the project will be updated with the rerooted tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var outgroup bool
var treeName string
var node int
var split float64

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().BoolVar(&outgroup, "outgroup", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().IntVar(&node, "node", -1, "")
	c.Flags().Float64Var(&split, "split", -1, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if treeName == "" {
		return c.UsageError("flag --tree must be defined")
	}
	if node < 0 {
		return c.UsageError("flag --node must be defined")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	set := project.Species
	if genesFlag {
		set = project.Genes
	}
	tc, err := p.Species()
	if genesFlag {
		tc, err = p.Genes()
	}
	if err != nil {
		return err
	}

	t := tc.Tree(treeName)
	if t == nil {
		return fmt.Errorf("tree %q not found in project %q", treeName, args[0])
	}

	if outgroup {
		split = 0
	}
	if split < 0 {
		rp, err := p.Params()
		if err != nil {
			return err
		}
		split = rp.Split()
	}

	bintree.Number(t)
	nt, err := bintree.Reroot(t, node, split)
	if err != nil {
		return fmt.Errorf("tree %q: %v", treeName, err)
	}
	tc.Set(treeName, nt)

	if err := writeTrees(tc, p.Path(set)); err != nil {
		return err
	}
	return nil
}

func writeTrees(tc *collection.Collection, treeFile string) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
