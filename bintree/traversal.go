// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree

import "fmt"

// TraversalID stores the traversal numbers
// of a node
// for a particular numbering of a tree.
//
// Mid is the in-order rank of the node,
// and [Start, End) is the interval of in-order ranks
// of the subtree rooted at the node.
// Then a node X is in the subtree of a node Y
// if Y.Start <= X.Mid < Y.End.
// The same relation is given by pre-order and post-order ranks:
// Y.PreOrder <= X.PreOrder and X.PostOrder <= Y.PostOrder.
type TraversalID struct {
	PreOrder  int
	PostOrder int
	Mid       int
	Start     int
	End       int

	num *numbering
}

// A numbering identifies a single numbering pass.
type numbering struct {
	root *Node
	size int
}

// Number assigns traversal numbers
// to all nodes of a tree.
//
// The root receives the pre-order rank 0
// and the last post-order rank.
// Any previous numbering of the nodes is replaced.
// Number must be called again
// if a node is reused to build a new tree.
func Number(root *Node) {
	num := &numbering{root: root}
	var pre, post, mid int

	var walk func(n *Node)
	walk = func(n *Node) {
		t := &TraversalID{
			PreOrder: pre,
			Start:    mid,
			num:      num,
		}
		pre++
		if n.left != nil {
			walk(n.left)
		}
		t.Mid = mid
		mid++
		if n.right != nil {
			walk(n.right)
		}
		t.End = mid
		t.PostOrder = post
		post++
		n.trav = t
	}
	walk(root)
	num.size = pre
}

// Traversal returns the traversal numbers of the node.
// It returns false if the node was not numbered.
func (n *Node) Traversal() (TraversalID, bool) {
	if n.trav == nil {
		return TraversalID{}, false
	}
	return *n.trav, true
}

// Mid returns the in-order rank of the node,
// or -1 if the node was not numbered.
func (n *Node) Mid() int {
	if n.trav == nil {
		return -1
	}
	return n.trav.Mid
}

// Contains returns true if x is in the subtree
// rooted at n
// (including n itself).
// Both nodes must be numbered
// by the same numbering pass,
// otherwise it returns false.
func (n *Node) Contains(x *Node) bool {
	if !sameNumbering(n, x) {
		return false
	}
	return n.trav.Start <= x.trav.Mid && x.trav.Mid < n.trav.End
}

// IsAncestor returns true if n is a proper ancestor of x.
// Both nodes must be numbered
// by the same numbering pass,
// otherwise it returns false.
func (n *Node) IsAncestor(x *Node) bool {
	if !sameNumbering(n, x) {
		return false
	}
	return n.trav.PreOrder < x.trav.PreOrder && x.trav.PostOrder < n.trav.PostOrder
}

func sameNumbering(a, b *Node) bool {
	if a.trav == nil || b.trav == nil {
		return false
	}
	return a.trav.num == b.trav.num
}

// CheckNumbers returns an error
// if the tree rooted at root
// does not have valid traversal numbers.
// It only checks the root,
// stale nodes below the root are detected
// when they are visited.
func CheckNumbers(root *Node) error {
	if root.trav == nil {
		return fmt.Errorf("tree not numbered: %w", ErrInvalidState)
	}
	if root.trav.num.root != root {
		return fmt.Errorf("tree numbered as a subtree: %w", ErrInvalidState)
	}
	return nil
}

// Size returns the number of nodes of a numbered tree.
func Size(root *Node) (int, error) {
	if err := CheckNumbers(root); err != nil {
		return 0, err
	}
	return root.trav.num.size, nil
}

// Find returns the node with the given in-order rank.
func Find(root *Node, mid int) (*Node, error) {
	p, err := path(root, mid)
	if err != nil {
		return nil, err
	}
	return p[len(p)-1], nil
}

// path returns the nodes in the path
// from the root to the node with the given in-order rank
// (both included).
func path(root *Node, mid int) ([]*Node, error) {
	if err := CheckNumbers(root); err != nil {
		return nil, err
	}
	num := root.trav.num

	var p []*Node
	n := root
	for {
		if n.trav == nil || n.trav.num != num {
			return nil, fmt.Errorf("stale node under node %d: %w", p[len(p)-1].trav.Mid, ErrInvalidState)
		}
		p = append(p, n)
		t := n.trav
		if mid < t.Start || mid >= t.End {
			return nil, fmt.Errorf("mid %d: %w", mid, ErrNotFound)
		}
		switch {
		case mid == t.Mid:
			return p, nil
		case mid < t.Mid:
			n = n.left
		default:
			n = n.right
		}
	}
}

// Nodes returns the nodes of a tree
// in pre-order.
func Nodes(root *Node) []*Node {
	var ns []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		ns = append(ns, n)
		if n.left != nil {
			walk(n.left)
		}
		if n.right != nil {
			walk(n.right)
		}
	}
	walk(root)
	return ns
}
