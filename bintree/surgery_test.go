// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bintree_test

import (
	"errors"
	"testing"

	"github.com/js-arias/phyrec/bintree"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-4

func TestMoveRoot(t *testing.T) {
	a := bintree.NewLeaf("a", 1)
	b := bintree.NewLeaf("b", 2)
	c := bintree.NewLeaf("c", 4)
	x := bintree.NewNode(a, b, 3).WithID("x")
	root := bintree.NewNode(x, c, 0)
	bintree.Number(root)

	tests := map[string]struct {
		mid   int
		split float64
		label bool
		want  map[string]float64
	}{
		"move to a": {
			mid:   a.Mid(),
			split: 0.5,
			want: map[string]float64{
				"a": 0.5,
				"b": 2,
				"c": 7,
			},
		},
		"remodel at a": {
			mid:   a.Mid(),
			split: 0,
			want: map[string]float64{
				"a": 0,
				"b": 2,
				"c": 7,
			},
		},
		"move to x": {
			mid:   x.Mid(),
			split: 0.5,
			label: true,
			want: map[string]float64{
				"a": 1,
				"b": 2,
				"c": 5.5,
			},
		},
	}

	for name, test := range tests {
		nr, err := bintree.Reroot(root, test.mid, test.split)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if nr.IsLeaf() || nr.IsUnary() {
			t.Fatalf("%s: root is not binary", name)
		}
		if nr.Distance() != root.Distance() {
			t.Errorf("%s: root distance: got %.6f, want %.6f", name, nr.Distance(), root.Distance())
		}
		for _, l := range bintree.Leaves(nr) {
			w, ok := test.want[l.ID()]
			if !ok {
				t.Errorf("%s: unexpected leaf %q", name, l.ID())
				continue
			}
			if !scalar.EqualWithinAbs(l.Distance(), w, tolerance) {
				t.Errorf("%s: leaf %q: got %.6f, want %.6f", name, l.ID(), l.Distance(), w)
			}
		}
		if got := bintree.Len(nr); got != 3 {
			t.Errorf("%s: leaves: got %d, want %d", name, got, 3)
		}

		// labels in the inverted path are dropped
		var label bool
		for _, n := range bintree.Nodes(nr) {
			if !n.IsLeaf() && n.ID() == "x" {
				label = true
			}
		}
		if label != test.label {
			t.Errorf("%s: label %q: got %v, want %v", name, "x", label, test.label)
		}
	}

	// the source tree is not modified
	if d := c.Distance(); d != 4 {
		t.Errorf("source tree: distance of c: got %.6f, want %.6f", d, 4.0)
	}
	if err := bintree.CheckNumbers(root); err != nil {
		t.Errorf("source tree: unexpected error: %v", err)
	}
}

func TestRerootDistances(t *testing.T) {
	for _, leaves := range []int{2, 3, 5, 10, 50} {
		for seed := uint64(1); seed <= 5; seed++ {
			root := randomTree(leaves, seed*uint64(leaves))
			bintree.Number(root)
			want := bintree.LeafDistances(root)
			wantSum := bintree.SumPairwiseDistances(root)

			for _, n := range bintree.Nodes(root) {
				mv, err := bintree.MoveRoot(root, n.Mid())
				if err != nil {
					t.Fatalf("tree %d-%d: move root to %d: unexpected error: %v", leaves, seed, n.Mid(), err)
				}
				testDistances(t, "move root", mv, want, wantSum)

				rm, err := bintree.RemodelRemovingRoot(root, n.Mid())
				if err != nil {
					t.Fatalf("tree %d-%d: remodel at %d: unexpected error: %v", leaves, seed, n.Mid(), err)
				}
				testDistances(t, "remodel", rm, want, wantSum)

				if got := bintree.Len(mv); got != leaves {
					t.Errorf("tree %d-%d: leaves: got %d, want %d", leaves, seed, got, leaves)
				}
				if !bintree.IsBinary(mv) {
					t.Errorf("tree %d-%d: rerooted tree is not binary", leaves, seed)
				}
			}

			// source tree is unchanged
			testDistances(t, "source", root, want, wantSum)
		}
	}
}

func testDistances(t testing.TB, name string, tree *bintree.Node, want map[bintree.Pair]float64, wantSum float64) {
	t.Helper()

	got := bintree.LeafDistances(tree)
	if len(got) != len(want) {
		t.Fatalf("%s: got %d pairs, want %d", name, len(got), len(want))
	}
	for p, w := range want {
		d, ok := got[p]
		if !ok {
			t.Fatalf("%s: pair %v not found", name, p)
		}
		if !scalar.EqualWithinAbs(d, w, tolerance) {
			t.Errorf("%s: pair %v: got %.6f, want %.6f", name, p, d, w)
		}
	}

	if s := bintree.SumPairwiseDistances(tree); !scalar.EqualWithinAbs(s, wantSum, tolerance) {
		t.Errorf("%s: sum of distances: got %.6f, want %.6f", name, s, wantSum)
	}
}

func TestMoveRootAtRoot(t *testing.T) {
	root := randomTree(20, 3)
	bintree.Number(root)

	mv, err := bintree.MoveRoot(root, root.Mid())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bintree.Number(mv)

	on := bintree.Nodes(root)
	nn := bintree.Nodes(mv)
	if len(on) != len(nn) {
		t.Fatalf("nodes: got %d, want %d", len(nn), len(on))
	}
	for i, n := range on {
		if nn[i].ID() != n.ID() {
			t.Errorf("node %d: got ID %q, want %q", i, nn[i].ID(), n.ID())
		}
		if nn[i].Distance() != n.Distance() {
			t.Errorf("node %d: got distance %.6f, want %.6f", i, nn[i].Distance(), n.Distance())
		}
		if nn[i].Mid() != n.Mid() {
			t.Errorf("node %d: got mid %d, want %d", i, nn[i].Mid(), n.Mid())
		}
	}
}

func TestRerootErrors(t *testing.T) {
	root := randomTree(10, 5)
	if _, err := bintree.MoveRoot(root, 0); !errors.Is(err, bintree.ErrInvalidState) {
		t.Errorf("unnumbered tree: got error %v, want %v", err, bintree.ErrInvalidState)
	}

	bintree.Number(root)
	if _, err := bintree.MoveRoot(root, 19); !errors.Is(err, bintree.ErrNotFound) {
		t.Errorf("unknown node: got error %v, want %v", err, bintree.ErrNotFound)
	}
	if _, err := bintree.Reroot(root, 0, 1.5); err == nil {
		t.Errorf("invalid split: expecting error")
	}

	// a unary root
	u := bintree.NewUnary(bintree.NewNode(bintree.NewLeaf("a", 1), bintree.NewLeaf("b", 1), 1), 0)
	bintree.Number(u)
	if _, err := bintree.MoveRoot(u, 0); !errors.Is(err, bintree.ErrMalformed) {
		t.Errorf("unary root: got error %v, want %v", err, bintree.ErrMalformed)
	}
}
