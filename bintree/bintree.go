// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bintree implements binary phylogenetic trees
// with branch lengths.
//
// A tree is represented by its root node.
// Nodes are built bottom-up
// (children before parents)
// and once built,
// the structure of a node is never modified.
// Operations that change the topology of a tree,
// such as rerooting,
// always return a new tree,
// and the source tree remains valid.
//
// Nodes can be annotated with traversal numbers
// (see Number)
// that allow constant time queries
// of the ancestor-descendant relation.
package bintree

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by tree operations.
var (
	// ErrMalformed is returned when a tree
	// violates a structural invariant
	// (e.g., a leaf without an ID,
	// or a single child node where two are required).
	ErrMalformed = errors.New("malformed tree")

	// ErrNotFound is returned when a traversal index
	// is not found in a tree.
	ErrNotFound = errors.New("node not found")

	// ErrInvalidState is returned when an operation
	// requires traversal numbers
	// and they are either undefined or stale.
	ErrInvalidState = errors.New("tree without valid traversal numbers")
)

// A Node is a node of a binary tree.
type Node struct {
	id   string
	dist float64

	left  *Node
	right *Node

	trav *TraversalID
}

// NewLeaf returns a new leaf node
// with the given ID
// and branch length.
func NewLeaf(id string, dist float64) *Node {
	return &Node{
		id:   id,
		dist: dist,
	}
}

// NewNode returns a new internal node
// with two children
// and the given branch length.
func NewNode(left, right *Node, dist float64) *Node {
	if left == nil || right == nil {
		panic("bintree: nil child")
	}
	return &Node{
		dist:  dist,
		left:  left,
		right: right,
	}
}

// NewUnary returns a new internal node
// with a single child.
// Unary nodes are only produced when requested explicitly
// (for example by a newick reader
// that reports unary nodes).
func NewUnary(child *Node, dist float64) *Node {
	if child == nil {
		panic("bintree: nil child")
	}
	return &Node{
		dist: dist,
		left: child,
	}
}

// WithID returns the node
// after setting its label.
// It is intended to label internal nodes
// just after they are built.
func (n *Node) WithID(id string) *Node {
	n.id = id
	return n
}

// WithDistance returns the node
// after setting its branch length.
// It is intended to be used
// while a tree is being built.
func (n *Node) WithDistance(dist float64) *Node {
	n.dist = dist
	return n
}

// ID returns the label of the node.
// Leaves always have an ID,
// internal nodes might be unlabeled.
func (n *Node) ID() string {
	return n.id
}

// Distance returns the length of the branch
// that connects the node with its parent.
func (n *Node) Distance() float64 {
	return n.dist
}

// Left returns the left child of the node.
// For unary nodes,
// the left child is the only child.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child of the node.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true if the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// IsUnary returns true if the node
// is an internal node with a single child.
func (n *Node) IsUnary() bool {
	return n.left != nil && n.right == nil
}

// Children returns the children of the node.
func (n *Node) Children() []*Node {
	switch {
	case n.left == nil:
		return nil
	case n.right == nil:
		return []*Node{n.left}
	}
	return []*Node{n.left, n.right}
}

// Copy returns a deep copy of a tree.
// The copy does not have traversal numbers.
func Copy(n *Node) *Node {
	c := &Node{
		id:   n.id,
		dist: n.dist,
	}
	if n.left != nil {
		c.left = Copy(n.left)
	}
	if n.right != nil {
		c.right = Copy(n.right)
	}
	return c
}

// Collapse returns a copy of a tree
// without unary nodes.
// The branch length of a unary node
// is added to the branch of its child.
// The copy does not have traversal numbers.
func Collapse(n *Node) *Node {
	if n.IsLeaf() {
		return NewLeaf(n.id, n.dist)
	}
	if n.right == nil {
		c := Collapse(n.left)
		c.dist += n.dist
		return c
	}
	return &Node{
		id:    n.id,
		dist:  n.dist,
		left:  Collapse(n.left),
		right: Collapse(n.right),
	}
}

// Relabel returns a copy of a tree
// in which the ID of each leaf
// is replaced by the value returned by fn.
func Relabel(n *Node, fn func(id string) string) *Node {
	if n.IsLeaf() {
		return NewLeaf(fn(n.id), n.dist)
	}
	c := &Node{
		id:   n.id,
		dist: n.dist,
		left: Relabel(n.left, fn),
	}
	if n.right != nil {
		c.right = Relabel(n.right, fn)
	}
	return c
}

// Leaves returns the leaves of a tree,
// from left to right.
func Leaves(n *Node) []*Node {
	if n.IsLeaf() {
		return []*Node{n}
	}
	ls := Leaves(n.left)
	if n.right != nil {
		ls = append(ls, Leaves(n.right)...)
	}
	return ls
}

// Len returns the number of leaves of a tree.
func Len(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	l := Len(n.left)
	if n.right != nil {
		l += Len(n.right)
	}
	return l
}

// IsBinary returns true if no node of the tree
// is a unary node.
func IsBinary(n *Node) bool {
	if n.IsLeaf() {
		return true
	}
	if n.right == nil {
		return false
	}
	return IsBinary(n.left) && IsBinary(n.right)
}

// Validate checks the structural invariants of a tree:
// every leaf must have an ID,
// and branch lengths must be non-negative numbers.
func Validate(n *Node) error {
	if math.IsNaN(n.dist) || n.dist < 0 {
		return fmt.Errorf("invalid branch length %v: %w", n.dist, ErrMalformed)
	}
	if n.IsLeaf() {
		if n.id == "" {
			return fmt.Errorf("leaf without ID: %w", ErrMalformed)
		}
		return nil
	}
	if err := Validate(n.left); err != nil {
		return err
	}
	if n.right != nil {
		return Validate(n.right)
	}
	return nil
}
