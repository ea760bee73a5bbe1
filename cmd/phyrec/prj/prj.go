// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/genemap"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyRec project and prints the information of the different
project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if sf := p.Path(project.Species); sf != "" {
		if err := readTrees(c.Stdout(), sf, "Species trees"); err != nil {
			return err
		}
	}

	if gf := p.Path(project.Genes); gf != "" {
		if err := readTrees(c.Stdout(), gf, "Gene trees"); err != nil {
			return err
		}
	}

	if mf := p.Path(project.GeneMap); mf != "" {
		if err := readGeneMap(c.Stdout(), mf); err != nil {
			return err
		}
	}

	rp, err := p.Params()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "Parameters:\n")
	fmt.Fprintf(c.Stdout(), "\tfile: %s\n", rp.Name())
	fmt.Fprintf(c.Stdout(), "\tmapping: %s\n", rp.Method())
	if sp := rp.Species(); sp != "" {
		fmt.Fprintf(c.Stdout(), "\tspecies tree: %s\n", sp)
	}
	fmt.Fprintf(c.Stdout(), "\n")

	return nil
}

func readTrees(w io.Writer, name, title string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := collection.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}

	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "\tfile: %s\n", name)

	terms := make(map[string]bool)
	min, max := -1, 0
	for _, tn := range c.Names() {
		t := c.Tree(tn)
		ls := bintree.Leaves(t)
		for _, l := range ls {
			terms[l.ID()] = true
		}
		if len(ls) > max {
			max = len(ls)
		}
		if min < 0 || len(ls) < min {
			min = len(ls)
		}
	}
	fmt.Fprintf(w, "\ttrees: %d\n", c.Len())
	if c.Len() > 0 {
		fmt.Fprintf(w, "\tterminals: %d [%d-%d per tree]\n", len(terms), min, max)
	}
	fmt.Fprintf(w, "\n")

	return nil
}

func readGeneMap(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := genemap.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}

	fmt.Fprintf(w, "Gene map:\n")
	fmt.Fprintf(w, "\tfile: %s\n", name)
	fmt.Fprintf(w, "\tgenes: %d\n", len(m.Genes("")))
	fmt.Fprintf(w, "\tspecies: %d\n", len(m.SpeciesList()))
	fmt.Fprintf(w, "\n")

	return nil
}
