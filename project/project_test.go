// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/newick"
	"github.com/js-arias/phyrec/project"
	"github.com/js-arias/phyrec/reconparam"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Species, "species.tab"},
		{project.Genes, "genes.tab"},
		{project.GeneMap, "gene-map.tab"},
		{project.Params, "params.tab"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
}

func TestReadTSV(t *testing.T) {
	in := `# phyrec project files
Dataset	Path
species	species.tab
GENES	genes.tab
params	
`
	p, err := project.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testProject(t, p, []setPath{
		{project.Genes, "genes.tab"},
		{project.Species, "species.tab"},
	})

	tests := map[string]string{
		"unknown dataset":  "dataset\tpath\ntrees\ttrees.tab\n",
		"repeated dataset": "dataset\tpath\ngenes\ta.tab\ngenes\tb.tab\n",
		"missing field":    "dataset\tfile\ngenes\ta.tab\n",
	}
	for name, in := range tests {
		if _, err := project.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestProjectData(t *testing.T) {
	spFile := "tmp-species-for-test.tab"
	defer os.Remove(spFile)

	sc := collection.New()
	for name, nwk := range map[string]string{
		"mammals":  "((human,chimp),mouse);",
		"primates": "((human,chimp),baboon);",
	} {
		tr, err := newick.Parse(nwk)
		if err != nil {
			t.Fatalf("tree %q: %v", name, err)
		}
		sc.Add(name, tr)
	}
	f, err := os.Create(spFile)
	if err != nil {
		t.Fatalf("unable to create species file: %v", err)
	}
	if err := sc.TSV(f); err != nil {
		t.Fatalf("unable to write species file: %v", err)
	}
	f.Close()

	p := project.New()
	p.SetName("tmp-project.tab")
	p.Add(project.Species, spFile)

	if _, err := p.SpeciesTree(""); err == nil {
		t.Errorf("species tree: expecting error on undefined name")
	}
	st, err := p.SpeciesTree("Mammals")
	if err != nil {
		t.Fatalf("species tree: unexpected error: %v", err)
	}
	if l := bintree.Len(st); l != 3 {
		t.Errorf("species tree: got %d leaves, want %d", l, 3)
	}
	if _, err := p.SpeciesTree("rodents"); err == nil {
		t.Errorf("species tree: expecting error on unknown tree")
	}

	if _, err := p.Genes(); err == nil {
		t.Errorf("genes: expecting error on undefined dataset")
	}
	if m, err := p.GeneMap(); m != nil || err != nil {
		t.Errorf("gene map: got %v [%v], want nil", m, err)
	}

	rp, err := p.Params()
	if err != nil {
		t.Fatalf("params: unexpected error: %v", err)
	}
	if rp.Method() != reconparam.Identity {
		t.Errorf("params: mapping: got %q, want %q", rp.Method(), reconparam.Identity)
	}
	if rp.Name() != project.DefaultParams {
		t.Errorf("params: name: got %q, want %q", rp.Name(), project.DefaultParams)
	}

	fn, err := p.Mapping(rp)
	if err != nil {
		t.Fatalf("mapping: unexpected error: %v", err)
	}
	if s := fn("human_1"); s != "human_1" {
		t.Errorf("mapping: got %q, want %q", s, "human_1")
	}
	rp.SetMapping(reconparam.Table)
	if _, err := p.Mapping(rp); err == nil {
		t.Errorf("mapping: expecting error on undefined gene map")
	}
}
