// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genemap_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyrec/genemap"
)

func TestMap(t *testing.T) {
	m := newMap(t)
	testMap(t, "map", m)

	if err := m.Add("HBA1", "chimp"); err == nil {
		t.Errorf("add: expecting error on gene with two species")
	}
	if err := m.Add("HBA1", "human"); err != nil {
		t.Errorf("add: unexpected error: %v", err)
	}

	fn := m.Mapping()
	if s := fn("HBA2"); s != "human" {
		t.Errorf("mapping: got %q, want %q", s, "human")
	}
	if s := fn("baboon"); s != "baboon" {
		t.Errorf("mapping: got %q, want %q", s, "baboon")
	}
}

func TestTSV(t *testing.T) {
	m := newMap(t)

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nm, err := genemap.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testMap(t, "tsv", nm)
}

func newMap(t testing.TB) *genemap.Map {
	t.Helper()

	m := genemap.New()
	pairs := [][2]string{
		{"HBA1", "human"},
		{"HBA2", "human"},
		{"Hba-a1", "mouse"},
		{"HBA_PANTR", "chimp"},
	}
	for _, p := range pairs {
		if err := m.Add(p[0], p[1]); err != nil {
			t.Fatalf("add %q: %v", p[0], err)
		}
	}
	return m
}

func testMap(t testing.TB, name string, m *genemap.Map) {
	t.Helper()

	genes := []string{"HBA1", "HBA2", "HBA_PANTR", "Hba-a1"}
	if g := m.Genes(""); !reflect.DeepEqual(g, genes) {
		t.Errorf("%s: genes: got %v, want %v", name, g, genes)
	}

	species := []string{"chimp", "human", "mouse"}
	if g := m.SpeciesList(); !reflect.DeepEqual(g, species) {
		t.Errorf("%s: species: got %v, want %v", name, g, species)
	}

	human := []string{"HBA1", "HBA2"}
	if g := m.Genes("human"); !reflect.DeepEqual(g, human) {
		t.Errorf("%s: genes of %q: got %v, want %v", name, "human", g, human)
	}

	if s := m.Species("Hba-a1"); s != "mouse" {
		t.Errorf("%s: species of %q: got %q, want %q", name, "Hba-a1", s, "mouse")
	}
}
