// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package recon

import (
	"fmt"

	"github.com/js-arias/phyrec/bintree"
)

// A speciesIndex stores the nodes of a species tree
// in pre-order,
// with its parents and depths.
type speciesIndex struct {
	nodes  []*bintree.Node
	parent []int

	// depth is the number of ancestors
	// with two descendants
	depth []int

	leaf map[string]int
}

func newSpeciesIndex(root *bintree.Node) (*speciesIndex, error) {
	size, err := bintree.Size(root)
	if err != nil {
		return nil, fmt.Errorf("species tree: %w", err)
	}
	sp := &speciesIndex{
		nodes:  make([]*bintree.Node, 0, size),
		parent: make([]int, 0, size),
		depth:  make([]int, 0, size),
		leaf:   make(map[string]int),
	}

	var walk func(n *bintree.Node, parent, depth int) error
	walk = func(n *bintree.Node, parent, depth int) error {
		if !root.Contains(n) {
			return fmt.Errorf("species tree: stale node: %w", bintree.ErrInvalidState)
		}
		x := len(sp.nodes)
		sp.nodes = append(sp.nodes, n)
		sp.parent = append(sp.parent, parent)
		sp.depth = append(sp.depth, depth)

		if n.IsLeaf() {
			id := n.ID()
			if id == "" {
				return fmt.Errorf("species tree: leaf without species: %w", bintree.ErrMalformed)
			}
			if _, dup := sp.leaf[id]; dup {
				return fmt.Errorf("species tree: repeated species %q: %w", id, bintree.ErrMalformed)
			}
			sp.leaf[id] = x
			return nil
		}

		// unary nodes do not add a speciation
		if !n.IsUnary() {
			depth++
		}
		for _, c := range n.Children() {
			if err := walk(c, x, depth); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, -1, 0); err != nil {
		return nil, err
	}
	return sp, nil
}

// LCA returns the lowest common ancestor
// of two species nodes.
func (sp *speciesIndex) lca(a, b int) int {
	nb := sp.nodes[b]
	for !sp.nodes[a].Contains(nb) {
		a = sp.parent[a]
	}
	return a
}
