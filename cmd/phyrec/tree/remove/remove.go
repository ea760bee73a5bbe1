// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package remove implements a command
// to remove trees from a PhyRec project.
package remove

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: "remove [--genes] <project-file> <tree-name>...",
	Short: "remove trees from a project",
	Long: `
Command remove reads the trees from a PhyRec project and removes the indicated
trees.

The first argument of the command is the name of the project file. The rest
of the arguments are the names of the trees to be removed.

By default, the trees are removed from the species trees. Use the flag --genes
to remove gene trees.

The name of each removed tree will be printed on the screen.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting tree names")
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

	changes := false
	for _, tn := range args[1:] {
		if tc.Tree(tn) == nil {
			fmt.Fprintf(c.Stderr(), "warning: tree %q not found\n", tn)
			continue
		}
		tc.Delete(tn)
		fmt.Fprintf(c.Stdout(), "%s\n", tn)
		changes = true
	}

	if !changes {
		return nil
	}

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
