// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reconparam_test

import (
	"os"
	"testing"

	"github.com/js-arias/phyrec/genemap"
	"github.com/js-arias/phyrec/reconparam"
)

func TestReconParam(t *testing.T) {
	name := "tmp-recon-parameters-for-test.tab"
	rp := reconparam.New(name)
	testRP(t, rp, nil, name)

	rp.SetMapping("Suffix")
	rp.SetSeparator("|")
	rp.SetSplit(0.25)
	rp.SetSpecies("Mammals")

	defer os.Remove(name)
	if err := rp.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := reconparam.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testRP(t, np, rp, name)

	if np.Species() != "mammals" {
		t.Errorf("species: got %q, want %q", np.Species(), "mammals")
	}
}

func TestSetters(t *testing.T) {
	rp := reconparam.New("params.tab")
	if err := rp.SetMapping("random"); err == nil {
		t.Errorf("mapping: expecting error")
	}
	if err := rp.SetSplit(1.5); err == nil {
		t.Errorf("split: expecting error")
	}
	if err := rp.SetSeparator(""); err == nil {
		t.Errorf("separator: expecting error")
	}
	if rp.Method() != reconparam.Identity {
		t.Errorf("mapping: got %q, want %q", rp.Method(), reconparam.Identity)
	}
}

func TestMapping(t *testing.T) {
	table := genemap.New()
	table.Add("HBA1", "human")

	tests := map[string]struct {
		method string
		sep    string
		gene   string
		want   string
	}{
		"identity": {
			method: reconparam.Identity,
			gene:   "human_1",
			want:   "human_1",
		},
		"prefix": {
			method: reconparam.Prefix,
			gene:   "human_hba_1",
			want:   "human",
		},
		"suffix": {
			method: reconparam.Suffix,
			gene:   "hba_1_human",
			want:   "human",
		},
		"suffix without separator": {
			method: reconparam.Suffix,
			gene:   "human",
			want:   "human",
		},
		"prefix with separator": {
			method: reconparam.Prefix,
			sep:    "::",
			gene:   "human::hba_1",
			want:   "human",
		},
		"table": {
			method: reconparam.Table,
			gene:   "HBA1",
			want:   "human",
		},
	}

	for name, test := range tests {
		rp := reconparam.New("params.tab")
		rp.SetMapping(test.method)
		if test.sep != "" {
			rp.SetSeparator(test.sep)
		}
		fn, err := rp.Mapping(table)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got := fn(test.gene); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}

	rp := reconparam.New("params.tab")
	rp.SetMapping(reconparam.Table)
	if _, err := rp.Mapping(nil); err == nil {
		t.Errorf("table without map: expecting error")
	}
}

func testRP(t testing.TB, rp, want *reconparam.RP, name string) {
	t.Helper()

	if want == nil {
		want = reconparam.New(name)
	}

	if rp.Name() != want.Name() {
		t.Errorf("name: got %q, want %q", rp.Name(), want.Name())
	}
	if rp.Method() != want.Method() {
		t.Errorf("mapping: got %q, want %q", rp.Method(), want.Method())
	}
	if rp.Separator() != want.Separator() {
		t.Errorf("separator: got %q, want %q", rp.Separator(), want.Separator())
	}
	if rp.Species() != want.Species() {
		t.Errorf("species: got %q, want %q", rp.Species(), want.Species())
	}
	if rp.Split() != want.Split() {
		t.Errorf("split: got %.6f, want %.6f", rp.Split(), want.Split())
	}
}
