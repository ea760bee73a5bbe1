// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package recon_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/newick"
	"github.com/js-arias/phyrec/recon"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

const speciesTree = "(((((((((((((human:0.006969,chimp:0.009727):0.025291,((baboon:0.008968):0.011019):0.024581):0.023649):0.066673):0.018405,((rat:0.081244,mouse:0.072818):0.238435):0.021892):0.02326,(((cow:0.164728,(cat:0.109852,dog:0.107805):0.049576):0.004663):0.010883):0.033242):0.028346):0.016015):0.226853):0.063898):0.126639):0.119814):0.16696);"

var dupsAndLosses = []struct {
	gene   string
	dups   int
	losses int
}{
	{"((human,baboon),chimp);", 1, 3},
	{"((human,chimp),baboon);", 0, 0},
	{"((human,(human, chimp)),baboon);", 1, 1},
	{"((human,(human, chimp)),(chimp, baboon));", 2, 3},
	{"(dog,cat);", 0, 0},
	{"((dog,cat), cow);", 0, 0},
	{"(cow,(dog,cat));", 0, 0},
	{"(cow,(cat,dog));", 0, 0},
	{"((cow,dog),(dog,cow));", 1, 2},
	{"((cow,(cow,cow)),(dog,cat));", 2, 0},
	{"((cow,(cow,cow)),(dog,((cat,cat),cat)));", 4, 0},
}

func parseTree(t testing.TB, s string) *bintree.Node {
	t.Helper()
	n, err := newick.Parse(s)
	if err != nil {
		t.Fatalf("when parsing %q: %v", s, err)
	}
	bintree.Number(n)
	return n
}

func TestDupsAndLosses(t *testing.T) {
	species := parseTree(t, speciesTree)

	for _, test := range dupsAndLosses {
		gene := parseTree(t, test.gene)
		dups, losses, err := recon.DupsAndLosses(species, gene, nil)
		if err != nil {
			t.Errorf("gene %s: unexpected error: %v", test.gene, err)
			continue
		}
		if dups != test.dups || losses != test.losses {
			t.Errorf("gene %s: got %d dups, %d losses, want %d dups, %d losses", test.gene, dups, losses, test.dups, test.losses)
		}
	}
}

func TestDupsAndLossesUnarySpecies(t *testing.T) {
	opt := newick.Options{
		DefaultDistance: newick.DefaultDistance,
		ReportUnary:     true,
	}
	species, err := opt.Parse(speciesTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bintree.Number(species)

	for _, test := range dupsAndLosses {
		gene := parseTree(t, test.gene)
		dups, losses, err := recon.DupsAndLosses(species, gene, nil)
		if err != nil {
			t.Errorf("gene %s: unexpected error: %v", test.gene, err)
			continue
		}
		if dups != test.dups || losses != test.losses {
			t.Errorf("gene %s: got %d dups, %d losses, want %d dups, %d losses", test.gene, dups, losses, test.dups, test.losses)
		}
	}
}

func TestReconcileLabels(t *testing.T) {
	species := parseTree(t, speciesTree)
	gene := parseTree(t, "((human,baboon),chimp);")

	r, err := recon.Reconcile(species, gene, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Labels) != 2 {
		t.Fatalf("labels: got %d, want %d", len(r.Labels), 2)
	}

	root := r.Labels[gene.Mid()]
	if root.Event != recon.Duplication {
		t.Errorf("root: got %v, want %v", root.Event, recon.Duplication)
	}
	if root.Losses != 2 {
		t.Errorf("root: got %d losses, want %d", root.Losses, 2)
	}
	hb := r.Labels[gene.Left().Mid()]
	if hb.Event != recon.Speciation {
		t.Errorf("human-baboon: got %v, want %v", hb.Event, recon.Speciation)
	}
	if hb.Losses != 1 {
		t.Errorf("human-baboon: got %d losses, want %d", hb.Losses, 1)
	}
	if root.Species != hb.Species {
		t.Errorf("root and human-baboon mapped to different species nodes")
	}

	var dups, losses int
	for _, lb := range r.Labels {
		if lb.Event == recon.Duplication {
			dups++
		}
		losses += lb.Losses
	}
	if dups != r.Dups || losses != r.Losses {
		t.Errorf("labels: got %d dups, %d losses, want %d dups, %d losses", dups, losses, r.Dups, r.Losses)
	}
}

func TestMapping(t *testing.T) {
	species := parseTree(t, speciesTree)
	gene := parseTree(t, "((human_1,baboon_a),chimp_x);")

	prefix := func(id string) string {
		sp, _, _ := strings.Cut(id, "_")
		return sp
	}
	dups, losses, err := recon.DupsAndLosses(species, gene, prefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dups != 1 || losses != 3 {
		t.Errorf("got %d dups, %d losses, want %d dups, %d losses", dups, losses, 1, 3)
	}

	// without mapping
	_, _, err = recon.DupsAndLosses(species, gene, nil)
	if !errors.Is(err, recon.ErrUnknownSpecies) {
		t.Errorf("identity mapping: got error %v, want %v", err, recon.ErrUnknownSpecies)
	}
}

func TestReconcileErrors(t *testing.T) {
	species := parseTree(t, speciesTree)

	gene := parseTree(t, "((human,gorilla),chimp);")
	_, _, err := recon.DupsAndLosses(species, gene, nil)
	var unk *recon.UnknownSpeciesError
	if !errors.As(err, &unk) {
		t.Fatalf("unknown species: got error %v, want %v", err, recon.ErrUnknownSpecies)
	}
	if unk.Species != "gorilla" {
		t.Errorf("unknown species: got %q, want %q", unk.Species, "gorilla")
	}

	raw, _ := newick.Parse("(human,chimp);")
	if _, _, err := recon.DupsAndLosses(species, raw, nil); !errors.Is(err, bintree.ErrInvalidState) {
		t.Errorf("unnumbered gene tree: got error %v, want %v", err, bintree.ErrInvalidState)
	}
	rawSp, _ := newick.Parse(speciesTree)
	gene = parseTree(t, "(human,chimp);")
	if _, _, err := recon.DupsAndLosses(rawSp, gene, nil); !errors.Is(err, bintree.ErrInvalidState) {
		t.Errorf("unnumbered species tree: got error %v, want %v", err, bintree.ErrInvalidState)
	}

	repeated := parseTree(t, "((human,chimp),human);")
	if _, _, err := recon.DupsAndLosses(repeated, gene, nil); !errors.Is(err, bintree.ErrMalformed) {
		t.Errorf("repeated species: got error %v, want %v", err, bintree.ErrMalformed)
	}

	single := parseTree(t, "human;")
	dups, losses, err := recon.DupsAndLosses(species, single, nil)
	if err != nil {
		t.Fatalf("single gene: unexpected error: %v", err)
	}
	if dups != 0 || losses != 0 {
		t.Errorf("single gene: got %d dups, %d losses, want 0 dups, 0 losses", dups, losses)
	}
}

// Canon returns a string representation of the topology of a tree
// that does not depend on the order of the children.
func canon(n *bintree.Node) string {
	if n.IsLeaf() {
		return n.ID()
	}
	if n.IsUnary() {
		return canon(n.Left())
	}
	a, b := canon(n.Left()), canon(n.Right())
	if b < a {
		a, b = b, a
	}
	return "(" + a + "," + b + ")"
}

func TestProbableRoot(t *testing.T) {
	species := parseTree(t, speciesTree)

	tests := []struct {
		gene   string
		want   string
		dups   int
		losses int
	}{
		{
			gene: "((human,baboon),chimp);",
			want: "((human,chimp),baboon);",
		},
		{
			gene: "((human,chimp),baboon);",
			want: "((human,chimp),baboon);",
		},
		{
			gene: "((((human,chimp),baboon),((dog,cat),cow)),(mouse,rat));",
			want: "((((human,chimp),baboon),(mouse,rat)),((dog,cat),cow));",
		},
		{
			gene: "((((human,chimp),baboon),(mouse,rat)),((dog,cat),cow));",
			want: "((((human,chimp),baboon),(mouse,rat)),((dog,cat),cow));",
		},
		{
			gene: "((((human,(chimp, chimp)),baboon),((dog,cat),cow)),(mouse,rat));",
			want: "((((human,(chimp,chimp)),baboon),(mouse,rat)),((dog,cat),cow));",
			dups: 1,
		},
		{
			gene: "human;",
			want: "human;",
		},
	}

	for _, test := range tests {
		gene := parseTree(t, test.gene)
		rooted, dups, losses, err := recon.ProbableRoot(species, gene, nil)
		if err != nil {
			t.Errorf("gene %s: unexpected error: %v", test.gene, err)
			continue
		}
		want, _ := newick.Parse(test.want)
		if got, w := canon(rooted), canon(want); got != w {
			t.Errorf("gene %s: got %s, want %s", test.gene, got, w)
		}
		if dups != test.dups || losses != test.losses {
			t.Errorf("gene %s: got %d dups, %d losses, want %d dups, %d losses", test.gene, dups, losses, test.dups, test.losses)
		}
		if err := bintree.CheckNumbers(rooted); err != nil {
			t.Errorf("gene %s: rooted tree: unexpected error: %v", test.gene, err)
		}
	}
}

func TestProbableRootUnaryGene(t *testing.T) {
	species := parseTree(t, speciesTree)

	opt := newick.Options{
		DefaultDistance: newick.DefaultDistance,
		ReportUnary:     true,
	}
	gene, err := opt.Parse("(((human,baboon)),chimp);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bintree.Number(gene)

	dups, losses, err := recon.DupsAndLosses(species, gene, nil)
	if err != nil {
		t.Fatalf("reconcile: unexpected error: %v", err)
	}
	if dups != 1 || losses != 3 {
		t.Errorf("reconcile: got %d dups, %d losses, want %d dups, %d losses", dups, losses, 1, 3)
	}

	rooted, dups, losses, err := recon.ProbableRoot(species, gene, nil)
	if err != nil {
		t.Fatalf("root: unexpected error: %v", err)
	}
	if dups != 0 || losses != 0 {
		t.Errorf("root: got %d dups, %d losses, want %d dups, %d losses", dups, losses, 0, 0)
	}
	want, _ := newick.Parse("((human,chimp),baboon);")
	if got, w := canon(rooted), canon(want); got != w {
		t.Errorf("root: got %s, want %s", got, w)
	}
	if !bintree.IsBinary(rooted) {
		t.Errorf("root: tree with unary nodes")
	}
}

func TestProbableRootRandom(t *testing.T) {
	const numSpecies = 20

	for seed := uint64(1); seed <= 10; seed++ {
		dist := distuv.Uniform{
			Min: 0,
			Max: 0.8,
			Src: rand.NewSource(seed + 100),
		}
		species := bintree.Random(numSpecies, rand.NewSource(seed), dist)
		bintree.Number(species)

		r := rand.New(rand.NewSource(seed + 200))
		gene := bintree.Random(30, rand.NewSource(seed+300), dist)
		labels := make(map[string]string)
		gene = bintree.Relabel(gene, func(id string) string {
			l, ok := labels[id]
			if !ok {
				l = strconv.Itoa(r.Intn(numSpecies))
				labels[id] = l
			}
			return l
		})
		bintree.Number(gene)

		od, ol, err := recon.DupsAndLosses(species, gene, nil)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		rooted, dups, losses, err := recon.ProbableRoot(species, gene, nil)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if dups+losses > od+ol {
			t.Errorf("seed %d: got %d events, want at most %d", seed, dups+losses, od+ol)
		}

		rd, rl, err := recon.DupsAndLosses(species, rooted, nil)
		if err != nil {
			t.Fatalf("seed %d: rooted tree: unexpected error: %v", seed, err)
		}
		if rd != dups || rl != losses {
			t.Errorf("seed %d: rooted tree: got %d dups, %d losses, want %d dups, %d losses", seed, rd, rl, dups, losses)
		}

		if got, want := bintree.SumPairwiseDistances(rooted), bintree.SumPairwiseDistances(gene); !scalar.EqualWithinAbs(got, want, 1e-4) {
			t.Errorf("seed %d: sum of distances: got %.6f, want %.6f", seed, got, want)
		}

		// no other rooting is better
		for _, n := range bintree.Nodes(gene) {
			mv, err := bintree.MoveRoot(gene, n.Mid())
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			bintree.Number(mv)
			d, l, err := recon.DupsAndLosses(species, mv, nil)
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}
			if d+l < dups+losses {
				t.Errorf("seed %d: rooting at %d: got %d events, best found %d", seed, n.Mid(), d+l, dups+losses)
			}
		}
	}
}
