// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package collection

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/newick"
	"github.com/js-arias/timetree"
)

var header = []string{
	"tree",
	"newick",
}

// ReadTSV reads a tree collection
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tree, the name of the tree
//   - newick, the tree in newick format
//
// Here is an example file:
//
//	# phyrec trees
//	tree	newick
//	species	((human:0.1,chimp:0.1):0.2,mouse:0.3):0.0;
//	gene-1	((human_1:0.1,chimp_1:0.2):0.1,mouse_1:0.2):0.0;
func ReadTSV(r io.Reader) (*Collection, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		name := canon(row[fields[f]])
		if name == "" {
			continue
		}

		f = "newick"
		t, err := newick.Parse(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if err := c.Add(name, t); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return c, nil
}

// TSV writes a tree collection as a TSV file.
func (c *Collection) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, name := range c.Names() {
		row := []string{
			name,
			newick.String(c.trees[name], true),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// ImportTimeTrees reads a collection of time calibrated trees
// from a timetree TSV file,
// and returns a collection in which branch lengths
// are given in million years.
func ImportTimeTrees(r io.Reader) (*Collection, error) {
	tc, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}

	c := New()
	for _, name := range tc.Names() {
		t, err := bintree.FromTimeTree(tc.Tree(name))
		if err != nil {
			return nil, err
		}
		if err := c.Add(name, t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// TimeTrees returns the trees of the collection
// as a collection of time calibrated trees.
// Branch lengths are interpreted as million years,
// and the age of each root is set from the longest path
// from the root to a leaf.
func (c *Collection) TimeTrees() (*timetree.Collection, error) {
	tc := timetree.NewCollection()
	for _, name := range c.Names() {
		nwk := newick.String(c.trees[name], true)

		// remove the root branch
		if i := strings.LastIndexByte(nwk, ':'); i >= 0 && !strings.ContainsAny(nwk[i:], ")'") {
			nwk = nwk[:i] + ";"
		}
		nc, err := timetree.Newick(strings.NewReader(nwk), name, 0)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %v", name, err)
		}
		for _, tn := range nc.Names() {
			if err := tc.Add(nc.Tree(tn)); err != nil {
				return nil, fmt.Errorf("tree %q: %v", name, err)
			}
		}
	}
	return tc, nil
}
