// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import (
	"slices"
	"strings"
)

// NodeNames returns a name for each node of a numbered tree,
// indexed by the in-order rank of the node.
// Leaves and labeled nodes use its ID,
// unlabeled internal nodes use the names of its children
// joined by an underscore.
func NodeNames(root *Node) ([]string, error) {
	size, err := Size(root)
	if err != nil {
		return nil, err
	}
	names := make([]string, size)

	var walk func(n *Node) string
	walk = func(n *Node) string {
		name := n.id
		if !n.IsLeaf() {
			l := walk(n.left)
			if n.right != nil {
				l += "_" + walk(n.right)
			}
			if name == "" {
				name = l
			}
		}
		names[n.trav.Mid] = name
		return name
	}
	walk(root)
	return names, nil
}

// MapTraversalIDs maps the in-order rank of the nodes
// of a numbered tree
// to the in-order rank of the nodes
// of another numbered tree
// that have the same set of leaves.
// Nodes without an equivalent node are not included.
func MapTraversalIDs(from, to *Node) (map[int]int, error) {
	if err := CheckNumbers(from); err != nil {
		return nil, err
	}
	if err := CheckNumbers(to); err != nil {
		return nil, err
	}

	toSets := make(map[string]int)
	leafSets(to, func(n *Node, key string) {
		toSets[key] = n.trav.Mid
	})

	m := make(map[int]int)
	leafSets(from, func(n *Node, key string) {
		if mid, ok := toSets[key]; ok {
			m[n.trav.Mid] = mid
		}
	})
	return m, nil
}

// LeafSets calls fn for each node
// with a key that identifies the set of leaves
// of the node.
func leafSets(root *Node, fn func(n *Node, key string)) {
	var walk func(n *Node) []string
	walk = func(n *Node) []string {
		if n.IsLeaf() {
			fn(n, n.id)
			return []string{n.id}
		}
		ids := walk(n.left)
		if n.right != nil {
			ids = append(ids, walk(n.right)...)
		}
		slices.Sort(ids)
		fn(n, strings.Join(ids, "\x00"))
		return ids
	}
	walk(root)
}
