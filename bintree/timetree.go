// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// MillionYears is the unit of branch lengths
// of trees imported from time-calibrated trees.
const MillionYears = 1_000_000

// FromTimeTree returns a binary tree
// from a time-calibrated tree.
//
// Branch lengths are the age differences
// between each node and its parent,
// in million years.
// Polytomies are resolved as a left comb
// with zero length branches,
// and nodes with a single descendant
// are kept as unary nodes.
func FromTimeTree(t *timetree.Tree) (*Node, error) {
	n, err := fromTimeNode(t, t.Root(), 0)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %w", t.Name(), err)
	}
	return n, nil
}

func fromTimeNode(t *timetree.Tree, id int, dist float64) (*Node, error) {
	if t.IsTerm(id) {
		tax := t.Taxon(id)
		if tax == "" {
			return nil, fmt.Errorf("node %d: terminal without taxon: %w", id, ErrMalformed)
		}
		return NewLeaf(tax, dist), nil
	}

	age := t.Age(id)
	children := t.Children(id)
	desc := make([]*Node, 0, len(children))
	for _, c := range children {
		brLen := float64(age-t.Age(c)) / MillionYears
		d, err := fromTimeNode(t, c, brLen)
		if err != nil {
			return nil, err
		}
		desc = append(desc, d)
	}

	if len(desc) == 1 {
		return NewUnary(desc[0], dist).WithID(t.Taxon(id)), nil
	}
	n := desc[0]
	for i, d := range desc[1:] {
		var brLen float64
		if i == len(desc)-2 {
			brLen = dist
		}
		n = NewNode(n, d, brLen)
	}
	return n.WithID(t.Taxon(id)), nil
}
