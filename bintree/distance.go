// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import "gonum.org/v1/gonum/floats"

// A Pair is an ordered pair of leaf IDs.
type Pair struct {
	A, B string
}

// LeafDistances returns the length of the path
// between each pair of leaves of a tree.
// Both orders of each pair are stored.
// If leaf IDs are repeated,
// only one of the distances is kept.
func LeafDistances(root *Node) map[Pair]float64 {
	dist := make(map[Pair]float64)

	type leafDist struct {
		id string
		d  float64
	}
	var walk func(n *Node) []leafDist
	walk = func(n *Node) []leafDist {
		if n.IsLeaf() {
			return []leafDist{{id: n.id, d: n.dist}}
		}
		ls := walk(n.left)
		if n.right != nil {
			rs := walk(n.right)
			for _, l := range ls {
				for _, r := range rs {
					d := l.d + r.d
					dist[Pair{l.id, r.id}] = d
					dist[Pair{r.id, l.id}] = d
				}
			}
			ls = append(ls, rs...)
		}
		for i := range ls {
			ls[i].d += n.dist
		}
		return ls
	}
	walk(root)
	return dist
}

// SumPairwiseDistances returns the sum of the distances
// between all unordered pairs of leaves of a tree.
//
// Each branch contributes with its length
// times the number of paths that cross it.
func SumPairwiseDistances(root *Node) float64 {
	total := Len(root)
	var sums []float64

	var walk func(n *Node) int
	walk = func(n *Node) int {
		l := 1
		if !n.IsLeaf() {
			l = walk(n.left)
			if n.right != nil {
				l += walk(n.right)
			}
		}
		if n != root {
			sums = append(sums, n.dist*float64(l*(total-l)))
		}
		return l
	}
	walk(root)
	if len(sums) == 0 {
		return 0
	}
	return floats.Sum(sums)
}
