// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a PhyRec project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/newick"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: `add [--genes] [-f|--file <tree-file>]
	[--newick <name>] [--tsv]
	<project-file> [<tree-file>...]`,
	Short: "add trees to a PhyRec project",
	Long: `
Command add reads one or more trees from one or more tree files, and adds the
trees to a PhyRec project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input.

By default, the trees are added as species trees. Use the flag --genes to add
the trees as gene trees.

By default, the input is expected to be in the form of tab-delimited tree
files (see 'phyrec help tree-files'). To import newick trees (i.e., trees in
parenthetical format), use the flag --newick with a name to be defined for the
trees found in the input files. If more than one tree is found, a numeric
suffix will be added to the name of each additional tree. To import time
calibrated trees from a PhyGeo tree file, use the flag --tsv; branch lengths
will be set in million years.

By default the trees will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'species.tab' (or 'genes.tab' for gene trees). A different tree
file name can be defined using the flag --file, or -f. If this flag is used,
and there is tree file already defined, then a new file with that name will be
created, and used as the tree file for the project (previously defined trees
will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var tsvFlag bool
var treeFile string
var newickName string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().BoolVar(&tsvFlag, "tsv", false, "")
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&newickName, "newick", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if tsvFlag && newickName != "" {
		return c.UsageError("flags --tsv and --newick are incompatible")
	}

	set := project.Species
	defFile := "species.tab"
	if genesFlag {
		set = project.Genes
		defFile = "genes.tab"
	}

	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	var tc *collection.Collection
	if tf := p.Path(set); tf != "" {
		tc, err = readTreeFile(nil, tf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", pFile, err)
		}
	}
	if tc == nil {
		tc = collection.New()
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	num := 0
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		var nc *collection.Collection
		switch {
		case newickName != "":
			nc, err = readNewick(c.Stdin(), fn, newickName, &num)
		case tsvFlag:
			nc, err = readTimeTrees(c.Stdin(), fn)
		default:
			nc, err = readTreeFile(c.Stdin(), fn)
		}
		if err != nil {
			return err
		}

		for _, tn := range nc.Names() {
			if err := tc.Add(tn, nc.Tree(tn)); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if treeFile == "" {
		treeFile = p.Path(set)
		if treeFile == "" {
			treeFile = defFile
		}
	}

	if err := writeTrees(tc); err != nil {
		return err
	}
	p.Add(set, treeFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTreeFile(r io.Reader, name string) (*collection.Collection, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := collection.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readTimeTrees(r io.Reader, name string) (*collection.Collection, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := collection.ImportTimeTrees(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readNewick(r io.Reader, newickFile, treeName string, num *int) (*collection.Collection, error) {
	if newickFile != "" {
		f, err := os.Open(newickFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		newickFile = "stdin"
	}

	ts, err := newick.Read(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", newickFile, err)
	}

	c := collection.New()
	for _, t := range ts {
		tn := treeName
		if *num > 0 {
			tn = fmt.Sprintf("%s.%d", treeName, *num)
		}
		*num++
		if err := c.Add(tn, t); err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", newickFile, err)
		}
	}
	return c, nil
}

func writeTrees(tc *collection.Collection) (err error) {
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
