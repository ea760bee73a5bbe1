// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nodes implements a command to print
// the nodes of a tree in a PhyRec project.
package nodes

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: "nodes [--genes] --tree <tree-name> <project-file>",
	Short: "print the nodes of a tree",
	Long: `
Command nodes reads a tree from a PhyRec project and prints its nodes in the
standard output.

The argument of the command is the name of the project file.

The flag --tree is required and sets the tree to be printed. By default, the
tree is searched in the species trees, use the flag --genes to search the tree
in the gene trees.

The output is a tab-delimited table with the following fields:

	- node       the in-order index of the node (used by other commands
	             to identify a node)
	- preorder   the index of the node in a pre-order traversal
	- postorder  the index of the node in a post-order traversal
	- length     the length of the branch of the node
	- name       the name of the node; if an internal node is unnamed, it
	             is the concatenation of the names of its descendants
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var treeName string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if treeName == "" {
		return c.UsageError("flag --tree must be defined")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
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
	bintree.Number(t)

	names, err := bintree.NodeNames(t)
	if err != nil {
		return err
	}

	nodes := bintree.Nodes(t)
	slices.SortFunc(nodes, func(a, b *bintree.Node) int {
		return a.Mid() - b.Mid()
	})

	fmt.Fprintf(c.Stdout(), "node\tpreorder\tpostorder\tlength\tname\n")
	for _, n := range nodes {
		tr, _ := n.Traversal()
		fmt.Fprintf(c.Stdout(), "%d\t%d\t%d\t%.6f\t%s\n", tr.Mid, tr.PreOrder, tr.PostOrder, n.Distance(), names[tr.Mid])
	}
	return nil
}
