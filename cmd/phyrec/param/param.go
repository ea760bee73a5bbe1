// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements a command to manage
// the reconciliation parameters of a project.
package param

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/genemap"
	"github.com/js-arias/phyrec/project"
	"github.com/js-arias/phyrec/reconparam"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[--mapping <method>] [--sep <separator>]
	[--species <tree-name>] [--split <value>]
	[--genemap <gene-map-file>]
	<project-file>`,
	Short: "manage reconciliation parameters",
	Long: `
Command param manages the parameters used for the reconciliation of gene trees
in a PhyRec project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the
reconciliation parameters.

By default, any change on the parameters will be stored in the current
parameters file. Use the flag --file to define a new parameters file.

The flag --mapping sets the method used to retrieve the species of a gene.
Valid values are:

	- identity: the gene name is the species name (the default).
	- prefix: the species name is the part of the gene name before the
	  separator.
	- suffix: the species name is the part of the gene name after the last
	  separator.
	- table: the species is taken from the gene map of the project.

The flag --sep sets the separator used by prefix and suffix mappings. The
default separator is "_".

If the project has more than one species tree, use the flag --species to set
the species tree used for the reconciliations.

The flag --split sets the proportion of a branch assigned to the node used as
the new root when a tree is rerooted. It must be a value between 0 and 1, the
default is 0.5.

The flag --genemap adds a gene map file to the project (see
'phyrec help gene-maps').
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var mapping string
var separator string
var species string
var split float64
var geneMapFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&mapping, "mapping", "", "")
	c.Flags().StringVar(&separator, "sep", "", "")
	c.Flags().StringVar(&species, "species", "", "")
	c.Flags().Float64Var(&split, "split", -1, "")
	c.Flags().StringVar(&geneMapFile, "genemap", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	if geneMapFile != "" {
		if err := checkGeneMap(geneMapFile); err != nil {
			return err
		}
		p.Add(project.GeneMap, geneMapFile)
		if err := p.Write(); err != nil {
			return err
		}
	}

	if addFile != "" {
		if _, err := reconparam.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	rp, err := p.Params()
	if err != nil {
		return err
	}
	if paramFile != "" {
		rp.SetName(paramFile)
	}

	ed := false
	if mapping != "" {
		if err := rp.SetMapping(mapping); err != nil {
			return err
		}
		ed = true
	}
	if separator != "" {
		if err := rp.SetSeparator(separator); err != nil {
			return err
		}
		ed = true
	}
	if species != "" {
		rp.SetSpecies(species)
		ed = true
	}
	if split >= 0 {
		if err := rp.SetSplit(split); err != nil {
			return err
		}
		ed = true
	}

	if p.Path(project.Params) != rp.Name() {
		if err := rp.Write(); err != nil {
			return err
		}
		p.Add(project.Params, rp.Name())
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}
	if ed {
		if err := rp.Write(); err != nil {
			return err
		}
		return nil
	}

	printParams(c.Stdout(), rp)
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

func checkGeneMap(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := genemap.ReadTSV(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

func printParams(w io.Writer, rp *reconparam.RP) {
	fmt.Fprintf(w, "file:      %s\n", rp.Name())
	fmt.Fprintf(w, "mapping:   %s\n", rp.Method())
	if m := rp.Method(); m == reconparam.Prefix || m == reconparam.Suffix {
		fmt.Fprintf(w, "separator: %q\n", rp.Separator())
	}
	if sp := rp.Species(); sp != "" {
		fmt.Fprintf(w, "species:   %s\n", sp)
	}
	fmt.Fprintf(w, "split:     %.6f\n", rp.Split())
}
