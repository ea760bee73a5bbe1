// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a gene to species map
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - gene, the name of a gene,
//     as used in the gene trees
//   - species, the name of the species,
//     as used in the species tree
//
// Here is an example file:
//
//	gene	species
//	HBA1	human
//	HBA2	human
//	Hba-a1	mouse
//	HBA_PANTR	chimp
func ReadTSV(r io.Reader) (*Map, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"gene", "species"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	m := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "gene"
		gene := row[fields[f]]

		f = "species"
		sp := row[fields[f]]

		if err := m.Add(gene, sp); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return m, nil
}

// TSV writes a gene to species map as a TSV file.
func (m *Map) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"gene", "species"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, g := range m.Genes("") {
		row := []string{
			g,
			m.gene[g],
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
