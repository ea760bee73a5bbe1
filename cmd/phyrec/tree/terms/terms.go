// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals in the trees of a PhyRec project.
package terms

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: "terms [--genes] [--tree <tree-name>] [--species] <project-file>",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads the trees from a PhyRec project and print the name of the
terminals in the standard output.

The argument of the command is the name of the project file.

By default, the terminals of the species trees will be printed. Use the flag
--genes to print the terminals of the gene trees.

By default all terminals will be printed. If the flag --tree is set, only the
terminals of the indicated tree will be printed.

If the flag --species is set with gene trees, the species of each gene, as
defined by the project parameters, will be printed after the gene name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var speciesFlag bool
var treeName string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().BoolVar(&speciesFlag, "species", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
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

	var ls []string
	if treeName != "" {
		ls = append(ls, treeName)
	} else {
		ls = tc.Names()
	}

	terms := make(map[string]bool)
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		for _, l := range bintree.Leaves(t) {
			terms[l.ID()] = true
		}
	}

	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	if !genesFlag || !speciesFlag {
		for _, term := range termList {
			fmt.Fprintf(c.Stdout(), "%s\n", term)
		}
		return nil
	}

	rp, err := p.Params()
	if err != nil {
		return err
	}
	id, err := p.Mapping(rp)
	if err != nil {
		return err
	}
	for _, term := range termList {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", term, id(term))
	}
	return nil
}
