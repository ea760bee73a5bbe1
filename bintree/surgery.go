// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import (
	"fmt"
	"math"
)

// Reroot returns a new tree
// with the same unrooted topology
// and the same distances between leaves,
// rooted on the branch of the node
// with the given in-order rank.
//
// Split is the proportion of the original branch
// assigned to the side of the target node,
// the remainder is assigned to the other side.
// The old root is removed,
// and its two branches are fused into a single branch.
// Labels of the internal nodes in the path
// from the old root to the target are dropped,
// as these nodes no longer define the same clade.
// The new root keeps the branch length of the old root.
//
// If the target is the root,
// it returns a copy of the tree.
// The tree must be numbered,
// and the root,
// as well as every node in the path to the target,
// must have two children.
func Reroot(root *Node, mid int, split float64) (*Node, error) {
	if math.IsNaN(split) || split < 0 || split > 1 {
		return nil, fmt.Errorf("invalid split value %.6f", split)
	}
	p, err := path(root, mid)
	if err != nil {
		return nil, err
	}
	if len(p) == 1 {
		return Copy(root), nil
	}
	for _, n := range p[:len(p)-1] {
		if n.right == nil {
			return nil, fmt.Errorf("unary node %d in path to node %d: %w", n.trav.Mid, mid, ErrMalformed)
		}
	}

	target := p[len(p)-1]
	d := target.dist * split
	return &Node{
		dist:  root.dist,
		left:  copyWithDistance(target, d),
		right: above(p, len(p)-1, target.dist-d),
	}, nil
}

// MoveRoot returns a new tree rooted
// at the mid point of the branch
// of the node with the given in-order rank.
func MoveRoot(root *Node, mid int) (*Node, error) {
	return Reroot(root, mid, 0.5)
}

// RemodelRemovingRoot returns a new tree
// in which the old root is removed
// and the new root is placed just above the node
// with the given in-order rank.
// The target is attached to the new root
// with a zero length branch,
// and its whole original branch length
// is assigned to the other side.
func RemodelRemovingRoot(root *Node, mid int) (*Node, error) {
	return Reroot(root, mid, 0)
}

// Above returns the part of the tree
// outside the subtree of p[i],
// as a subtree hanging from p[i]
// with a branch of the given length.
func above(p []*Node, i int, dist float64) *Node {
	parent := p[i-1]
	sister := parent.left
	if sister == p[i] {
		sister = parent.right
	}

	// the old root is removed,
	// so its branches are merged
	if i == 1 {
		return copyWithDistance(sister, sister.dist+dist)
	}
	return &Node{
		dist:  dist,
		left:  Copy(sister),
		right: above(p, i-1, parent.dist),
	}
}

func copyWithDistance(n *Node, dist float64) *Node {
	c := Copy(n)
	c.dist = dist
	return c
}
