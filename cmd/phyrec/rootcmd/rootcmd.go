// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rootcmd implements a command to search
// the most probable root of the gene trees
// of a PhyRec project.
package rootcmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/batch"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/newick"
	"github.com/js-arias/phyrec/project"
)

var Command = &command.Command{
	Usage: `root [--cpu <number>] [--replace]
	[-o|--output <file>] <project-file>`,
	Short: "search the most probable root of gene trees",
	Long: `
Command root reads the gene trees of a PhyRec project and, for each tree,
search the root position that minimizes the number of events (duplications
plus losses) implied by the reconciliation of the gene tree with the species
tree of the project. Ties are resolved by the number of duplications, and then
by the first rooting found in a pre-order traversal of the gene tree.

The argument of the command is the name of the project file.

By default, the results will be printed in the standard output. Use the flag
--output, or -o, to define an output file. The output is a TSV file with the
following columns:

	tree	the name of the gene tree
	dups	the number of duplications of the best rooting
	losses	the number of losses of the best rooting
	newick	the rerooted tree

If the flag --replace is given, the gene trees of the project will be replaced
by the rerooted trees.

Gene trees that can not be reconciled are reported in the standard error, and
ignored in the output.

By default, all available CPUs will be used in the calculations. Set the flag
--cpu to use a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numCPU int
var replace bool
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().BoolVar(&replace, "replace", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	rp, err := p.Params()
	if err != nil {
		return err
	}
	species, err := p.SpeciesTree(rp.Species())
	if err != nil {
		return err
	}
	id, err := p.Mapping(rp)
	if err != nil {
		return err
	}
	genes, err := p.Genes()
	if err != nil {
		return err
	}

	res := batch.Root(species, genes, id, numCPU)
	var ok []batch.Result
	for _, r := range res {
		if r.Err != nil {
			fmt.Fprintf(c.Stderr(), "warning: gene tree %q: %v\n", r.Name, r.Err)
			continue
		}
		ok = append(ok, r)
	}

	if err := writeOutput(c.Stdout(), ok); err != nil {
		return err
	}

	if replace {
		for _, r := range ok {
			genes.Set(r.Name, r.Tree)
		}
		if err := writeTrees(genes, p.Path(project.Genes)); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(stdout io.Writer, res []batch.Result) (err error) {
	w := stdout
	if output != "" {
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	tab := csv.NewWriter(bw)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"tree", "dups", "losses", "newick"}); err != nil {
		return fmt.Errorf("while writing results: %v", err)
	}
	for _, r := range res {
		row := []string{
			r.Name,
			strconv.Itoa(r.Dups),
			strconv.Itoa(r.Losses),
			newick.String(r.Tree, true),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing results: %v", err)
		}
	}
	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("while writing results: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing results: %v", err)
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
