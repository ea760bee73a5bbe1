// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements the reconciliation
// of a collection of gene trees
// using several goroutines.
package batch

import (
	"runtime"
	"sync"

	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/recon"
)

// A Result is the reconciliation of a gene tree.
type Result struct {
	// Name of the gene tree.
	Name string

	// Tree is a numbered copy of the gene tree,
	// or the rerooted tree,
	// if the root was searched.
	Tree *bintree.Node

	Dups   int
	Losses int

	// Err is the error found
	// when reconciling the tree.
	Err error
}

type jobChanType struct {
	gene    *bintree.Node
	species *bintree.Node
	id      recon.Mapping
	root    bool

	res *Result
	wg  *sync.WaitGroup
}

// Reconcile reconciles all the trees
// in a gene tree collection
// with a species tree.
// Use cpu to define the number of process
// used for the reconciliations.
// The default (zero or less) uses all available CPU.
//
// The results are sorted by the name of the gene tree.
func Reconcile(species *bintree.Node, genes *collection.Collection, id recon.Mapping, cpu int) []Result {
	return run(species, genes, id, cpu, false)
}

// Root searches the most probable root
// of all the trees in a gene tree collection.
// Use cpu to define the number of process
// used for the searches.
// The default (zero or less) uses all available CPU.
//
// The results are sorted by the name of the gene tree.
func Root(species *bintree.Node, genes *collection.Collection, id recon.Mapping, cpu int) []Result {
	return run(species, genes, id, cpu, true)
}

func run(species *bintree.Node, genes *collection.Collection, id recon.Mapping, cpu int, root bool) []Result {
	if cpu <= 0 {
		cpu = runtime.NumCPU()
	}

	// the species tree is only read
	// by the goroutines
	sp := bintree.Copy(species)
	bintree.Number(sp)

	jobChan := make(chan jobChanType, cpu*2)
	for range cpu {
		go runJob(jobChan)
	}

	names := genes.Names()
	res := make([]Result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		res[i].Name = name
		wg.Add(1)
		jobChan <- jobChanType{
			gene:    genes.Tree(name),
			species: sp,
			id:      id,
			root:    root,
			res:     &res[i],
			wg:      &wg,
		}
	}
	wg.Wait()
	close(jobChan)

	return res
}

func runJob(jc chan jobChanType) {
	for j := range jc {
		// each job owns its gene tree
		g := bintree.Copy(j.gene)
		bintree.Number(g)

		if j.root {
			t, dups, losses, err := recon.ProbableRoot(j.species, g, j.id)
			j.res.Tree = t
			j.res.Dups = dups
			j.res.Losses = losses
			j.res.Err = err
		} else {
			dups, losses, err := recon.DupsAndLosses(j.species, g, j.id)
			j.res.Tree = g
			j.res.Dups = dups
			j.res.Losses = losses
			j.res.Err = err
		}
		j.wg.Done()
	}
}
