// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a PhyRec project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/project"
	"github.com/js-arias/phyrec/recon"
)

var Command = &command.Command{
	Usage: `draw [--genes] [--tree <tree>]
	[--step <value>] [--nonodes]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads a PhyRec project and draws the trees into a SVG-encoded
file.

The argument of the command is the name of the project file.

By default, the species trees will be drawn. Use the flag --genes to draw the
gene trees. Gene trees are reconciled with the species tree of the project,
and the internal nodes are colored by its event: duplications are drawn in red
and speciations in blue. The vertical lines of the internal nodes are colored
using a gradient that indicates the number of losses implied by the node.

By default, 100 pixel units will be used per branch length unit; use the flag
--step to define a different value (it can have decimal points).

By default, all trees in the project will be drawn. If the flag --tree is set,
only the indicated tree will be printed.

By default, the index of each internal node (see 'phyrec tree nodes') will be
drawn. If the flag --nonodes is given, then it will draw the tree without node
indices.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var genesFlag bool
var noNodes bool
var stepX float64
var treeName string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
	c.Flags().BoolVar(&noNodes, "nonodes", false, "")
	c.Flags().Float64Var(&stepX, "step", 100, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if stepX <= 0 {
		return c.UsageError(fmt.Sprintf("invalid step value: %.6f", stepX))
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

	var species *bintree.Node
	var id recon.Mapping
	if genesFlag {
		rp, err := p.Params()
		if err != nil {
			return err
		}
		species, err = p.SpeciesTree(rp.Species())
		if err != nil {
			return err
		}
		bintree.Number(species)
		id, err = p.Mapping(rp)
		if err != nil {
			return err
		}
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		bintree.Number(t)

		var rec *recon.Reconciliation
		if species != nil {
			rec, err = recon.Reconcile(species, t, id)
			if err != nil {
				fmt.Fprintf(c.Stderr(), "warning: tree %q: %v\n", tn, err)
				rec = nil
			}
		}

		if err := writeSVG(tn, copyTree(t, rec, stepX)); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

	f, err := os.Create(name)
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
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
