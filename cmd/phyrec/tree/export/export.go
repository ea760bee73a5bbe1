// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the trees of a PhyRec project
// as time calibrated trees.
package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: "export [--genes] [-o|--output <file>] <project-file>",
	Short: "export trees as time calibrated trees",
	Long: `
Command export reads the trees of a PhyRec project and writes them as a
tab-delimited file of time calibrated trees, as used by PhyGeo.

The argument of the command is the name of the project file.

By default, the species trees are exported. Use the flag --genes to export the
gene trees.

Branch lengths are interpreted as million years, and the age of the root is
set from the longest path between the root and a terminal.

By default, the trees are written in the standard output. Use the flag -o, or
--output, to write the trees in a file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
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

	tt, err := tc.TimeTrees()
	if err != nil {
		return err
	}

	if output == "" {
		return tt.TSV(c.Stdout())
	}
	return writeTimeTrees(tt)
}

func writeTimeTrees(tt *timetree.Collection) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := tt.TSV(bw); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
