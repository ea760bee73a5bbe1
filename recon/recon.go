// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package recon implements the reconciliation
// of gene trees with species trees.
//
// Each node of a gene tree is mapped
// to the lowest common ancestor (LCA)
// in the species tree
// of the species of its leaves.
// A gene node is a duplication
// if it is mapped to the same species node
// as any of its children,
// otherwise it is a speciation.
// Losses are the species lineages skipped
// between a gene node and its children.
//
// The reconciliation only reads the trees,
// so many reconciliations can share the same species tree,
// but both trees must be numbered
// (see bintree.Number)
// before a reconciliation.
package recon

import (
	"errors"
	"fmt"

	"github.com/js-arias/phyrec/bintree"
)

// ErrUnknownSpecies is returned when a gene
// is assigned to a species
// not found in the species tree.
var ErrUnknownSpecies = errors.New("unknown species")

// UnknownSpeciesError is the error returned
// when a gene leaf maps to a species
// not found in the species tree.
type UnknownSpeciesError struct {
	Gene    string
	Species string
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("gene %q: species %q: %v", e.Gene, e.Species, ErrUnknownSpecies)
}

func (e *UnknownSpeciesError) Unwrap() error {
	return ErrUnknownSpecies
}

// Mapping is a function that returns
// the species of a gene
// from the ID of a gene leaf.
type Mapping func(id string) string

// Identity is a mapping in which the ID of a gene
// is the species name.
func Identity(id string) string {
	return id
}

// Event is the kind of event
// assigned to an internal gene node.
type Event int

// Valid events.
const (
	Speciation Event = iota
	Duplication
)

func (e Event) String() string {
	switch e {
	case Speciation:
		return "speciation"
	case Duplication:
		return "duplication"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// A Label is the reconciliation
// of a single internal node of a gene tree.
type Label struct {
	Event Event

	// Species is the species node
	// in which the gene node is mapped.
	Species *bintree.Node

	// Losses is the number of losses
	// implied on the branches
	// from the node to its children.
	Losses int
}

// Reconciliation is the result
// of reconciling a gene tree with a species tree.
type Reconciliation struct {
	Dups   int
	Losses int

	// Labels of the internal gene nodes,
	// indexed by their in-order rank.
	// Unary nodes are not labeled.
	Labels map[int]Label
}

// Reconcile reconciles a gene tree
// with a species tree.
// The function id is used to retrieve
// the species of each gene leaf;
// if it is nil,
// the ID of a gene leaf is used as the species name.
func Reconcile(species, gene *bintree.Node, id Mapping) (*Reconciliation, error) {
	sp, err := newSpeciesIndex(species)
	if err != nil {
		return nil, err
	}
	return sp.reconcile(gene, id)
}

// DupsAndLosses returns the number of duplications
// and losses
// required to reconcile a gene tree
// with a species tree.
func DupsAndLosses(species, gene *bintree.Node, id Mapping) (dups, losses int, err error) {
	r, err := Reconcile(species, gene, id)
	if err != nil {
		return 0, 0, err
	}
	return r.Dups, r.Losses, nil
}

type reconciler struct {
	sp   *speciesIndex
	id   Mapping
	root *bintree.Node
	r    *Reconciliation
}

func (sp *speciesIndex) reconcile(gene *bintree.Node, id Mapping) (*Reconciliation, error) {
	if id == nil {
		id = Identity
	}
	if err := bintree.CheckNumbers(gene); err != nil {
		return nil, fmt.Errorf("gene tree: %w", err)
	}

	rc := &reconciler{
		sp:   sp,
		id:   id,
		root: gene,
		r: &Reconciliation{
			Labels: make(map[int]Label),
		},
	}
	if _, err := rc.mapNode(gene); err != nil {
		return nil, err
	}
	return rc.r, nil
}

// MapNode maps a gene node,
// and returns the index of its species node.
func (rc *reconciler) mapNode(g *bintree.Node) (int, error) {
	if !rc.root.Contains(g) {
		return 0, fmt.Errorf("gene tree: stale node: %w", bintree.ErrInvalidState)
	}
	if g.IsLeaf() {
		s := rc.id(g.ID())
		x, ok := rc.sp.leaf[s]
		if !ok {
			return 0, &UnknownSpeciesError{Gene: g.ID(), Species: s}
		}
		return x, nil
	}

	left, err := rc.mapNode(g.Left())
	if err != nil {
		return 0, err
	}
	if g.IsUnary() {
		return left, nil
	}
	right, err := rc.mapNode(g.Right())
	if err != nil {
		return 0, err
	}

	m := rc.sp.lca(left, right)
	lb := Label{
		Event:   Speciation,
		Species: rc.sp.nodes[m],
	}
	if m == left || m == right {
		lb.Event = Duplication
		rc.r.Dups++
	}

	for _, c := range []int{left, right} {
		l := rc.sp.depth[c] - rc.sp.depth[m]
		if lb.Event == Speciation {
			l--
		}
		lb.Losses += l
	}
	rc.r.Losses += lb.Losses
	rc.r.Labels[g.Mid()] = lb
	return m, nil
}
