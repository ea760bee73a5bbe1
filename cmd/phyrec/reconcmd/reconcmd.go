// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reconcmd implements a command to reconcile
// the gene trees of a PhyRec project
// with its species tree.
package reconcmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/batch"
	"github.com/js-arias/phyrec/project"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `recon [--cpu <number>] [--plot <file>]
	[-o|--output <file>] <project-file>`,
	Short: "reconcile gene trees with the species tree",
	Long: `
Command recon reads the gene trees of a PhyRec project and reconcile each one
with the species tree of the project, using the least common ancestor
mapping. For each gene tree, it reports the number of gene duplications and
gene losses implied by the tree.

The argument of the command is the name of the project file.

The species tree, as well as the way in which gene names are assigned to
species, are defined in the parameters of the project (see 'phyrec help
parameters').

By default, the results will be printed in the standard output. Use the flag
--output, or -o, to define an output file. The output is a TSV file with the
following columns:

	tree	the name of the gene tree
	dups	the number of duplications
	losses	the number of losses

At the end of the file, as comments, the mean and standard deviation of
duplications and losses are reported.

Gene trees that can not be reconciled (for example, because a gene is not
assigned to a species of the species tree) are reported in the standard
error, and ignored in the output.

Use the flag --plot to define a file to store a histogram of the number of
events (duplications plus losses) per gene tree. The format of the image is
defined by the extension of the file name (for example '.png', or '.svg').

By default, all available CPUs will be used in the calculations. Set the flag
--cpu to use a different number of CPUs.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numCPU int
var output string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
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

	res := batch.Reconcile(species, genes, id, numCPU)
	var ok []batch.Result
	for _, r := range res {
		if r.Err != nil {
			fmt.Fprintf(c.Stderr(), "warning: gene tree %q: %v\n", r.Name, r.Err)
			continue
		}
		ok = append(ok, r)
	}

	w := c.Stdout()
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
	fmt.Fprintf(bw, "# reconciliation of gene trees from project %q\n", args[0])
	fmt.Fprintf(bw, "# date: %s\n", time.Now().Format(time.RFC3339))
	if err := writeResults(bw, ok); err != nil {
		return fmt.Errorf("while writing results: %v", err)
	}
	writeSummary(bw, ok)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing results: %v", err)
	}

	if plotFile != "" {
		if err := makePlot(ok); err != nil {
			return fmt.Errorf("while making plot %q: %v", plotFile, err)
		}
	}
	return nil
}

func writeResults(w io.Writer, res []batch.Result) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"tree", "dups", "losses"}); err != nil {
		return err
	}
	for _, r := range res {
		row := []string{
			r.Name,
			strconv.Itoa(r.Dups),
			strconv.Itoa(r.Losses),
		}
		if err := tab.Write(row); err != nil {
			return err
		}
	}
	tab.Flush()
	return tab.Error()
}

func writeSummary(w io.Writer, res []batch.Result) {
	if len(res) == 0 {
		return
	}
	dups := make([]float64, 0, len(res))
	losses := make([]float64, 0, len(res))
	for _, r := range res {
		dups = append(dups, float64(r.Dups))
		losses = append(losses, float64(r.Losses))
	}

	dm, ds := stat.MeanStdDev(dups, nil)
	lm, ls := stat.MeanStdDev(losses, nil)
	if len(res) == 1 {
		// the standard deviation
		// of a single value is undefined
		ds, ls = 0, 0
	}
	fmt.Fprintf(w, "# trees: %d\n", len(res))
	fmt.Fprintf(w, "# dups: mean %.3f, sd %.3f\n", dm, ds)
	fmt.Fprintf(w, "# losses: mean %.3f, sd %.3f\n", lm, ls)
}
