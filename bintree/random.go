// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import (
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random returns a random binary tree
// with the indicated number of leaves.
//
// The tree is built by joining random pairs of subtrees
// until a single tree remains.
// Leaves are labeled with consecutive integers
// starting at 0,
// and branch lengths are taken from dist.
// If leaves is less than 1,
// it returns nil.
func Random(leaves int, src rand.Source, dist distuv.Rander) *Node {
	if leaves < 1 {
		return nil
	}
	r := rand.New(src)

	nodes := make([]*Node, leaves)
	for i := range nodes {
		nodes[i] = NewLeaf(strconv.Itoa(i), dist.Rand())
	}
	for len(nodes) > 1 {
		i := r.Intn(len(nodes))
		last := len(nodes) - 1
		nodes[i], nodes[last] = nodes[last], nodes[i]
		a := nodes[last]
		nodes = nodes[:last]

		j := r.Intn(len(nodes))
		nodes[j] = NewNode(a, nodes[j], dist.Rand())
	}
	return nodes[0]
}
