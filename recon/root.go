// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package recon

import (
	"fmt"

	"github.com/js-arias/phyrec/bintree"
)

// ProbableRoot searches the rooting of a gene tree
// that requires the minimum number of events
// (duplications plus losses)
// to reconcile it with a species tree.
//
// Every branch of the gene tree is tried as a root
// (the root is placed at the mid point of the branch),
// in pre-order.
// The two children of the root
// are equivalent to the current root,
// so they are not tried.
// Ties are broken in favor of the rooting
// with fewer duplications,
// and then by the first rooting found.
// As the current rooting is tried first,
// the result is never worse
// than the input gene tree.
//
// Unary nodes of the gene tree are collapsed
// before the search.
//
// It returns a new rooted gene tree,
// already numbered,
// and the number of duplications and losses.
func ProbableRoot(species, gene *bintree.Node, id Mapping) (rooted *bintree.Node, dups, losses int, err error) {
	sp, err := newSpeciesIndex(species)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := bintree.CheckNumbers(gene); err != nil {
		return nil, 0, 0, fmt.Errorf("gene tree: %w", err)
	}
	if !bintree.IsBinary(gene) {
		// unary nodes can not be rerooted
		// but they do not change the reconciliation
		gene = bintree.Collapse(gene)
		bintree.Number(gene)
	}

	var best *bintree.Node
	var bestRec *Reconciliation
	for _, n := range bintree.Nodes(gene) {
		if n == gene.Left() || n == gene.Right() {
			continue
		}

		t, err := bintree.MoveRoot(gene, n.Mid())
		if err != nil {
			return nil, 0, 0, fmt.Errorf("gene tree: rooting at node %d: %w", n.Mid(), err)
		}
		bintree.Number(t)
		r, err := sp.reconcile(t, id)
		if err != nil {
			return nil, 0, 0, err
		}
		if bestRec == nil || better(r, bestRec) {
			best = t
			bestRec = r
		}
	}
	return best, bestRec.Dups, bestRec.Losses, nil
}

// Better returns true if a requires fewer events than b.
func better(a, b *Reconciliation) bool {
	ta := a.Dups + a.Losses
	tb := b.Dups + b.Losses
	if ta != tb {
		return ta < tb
	}
	return a.Dups < b.Dups
}
