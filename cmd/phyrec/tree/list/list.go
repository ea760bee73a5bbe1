// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of trees in a PhyRec project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: "list [--genes] [--count] <project-file>",
	Short: "print a list of the trees in a project",
	Long: `
Command list reads the trees from a PhyRec project and print the tree names in
the standard output.

The argument of the command is the name of the project file.

By default, the species trees will be listed. Use the flag --genes to list the
gene trees.

If the flag --count is set, the number of terminals of each tree will be
printed after the tree name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var countFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().BoolVar(&countFlag, "count", false, "")
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

	for _, tn := range tc.Names() {
		if countFlag {
			fmt.Fprintf(c.Stdout(), "%s\t%d\n", tn, bintree.Len(tc.Tree(tn)))
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\n", tn)
	}
	return nil
}
