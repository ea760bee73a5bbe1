// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reconparam implements reading and writing
// of the parameters used for gene tree reconciliation.
package reconparam

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/phyrec/genemap"
	"github.com/js-arias/phyrec/recon"
)

// Param is a keyword to identify
// the type of parameter in a parameter file.
type Param string

// Valid parameters
const (
	// Mapping is the method used to retrieve
	// the species of a gene.
	Mapping Param = "mapping"

	// Separator is the string that separates
	// the species name from the gene name
	// in the prefix and suffix mappings.
	Separator Param = "separator"

	// Species is the name of the species tree
	// used for the reconciliations.
	Species Param = "species"

	// Split is the proportion of a branch
	// assigned to the rooted node
	// when a tree is rerooted.
	Split Param = "split"
)

// Valid mapping methods.
const (
	// The gene name is the species name.
	Identity = "identity"

	// The species name is the prefix
	// of the gene name.
	Prefix = "prefix"

	// The species name is the suffix
	// of the gene name.
	Suffix = "suffix"

	// The species name is taken
	// from a gene to species table.
	Table = "table"
)

// RP represents a collection of reconciliation parameters.
type RP struct {
	name string // file name

	mapping string
	sep     string
	species string
	split   float64
}

// New creates a new parameter collection.
func New(name string) *RP {
	return &RP{
		name:    name,
		mapping: Identity,
		sep:     "_",
		split:   0.5,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameter file from a TSV file.
//
// The TSV must contains the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# phyrec reconciliation parameters
//	parameter	value
//	mapping	prefix
//	separator	_
//	species	mammals
//	split	0.500000
func Read(name string) (*RP, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	rp := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		v := row[fields[f]]
		switch p {
		case Mapping:
			if err := rp.SetMapping(v); err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
		case Separator:
			if err := rp.SetSeparator(v); err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
		case Species:
			rp.SetSpecies(v)
		case Split:
			s, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
			if err := rp.SetSplit(s); err != nil {
				return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
			}
		}
	}
	return rp, nil
}

// Mapping returns the function used to retrieve
// the species of a gene.
// The table is only required
// for the table mapping.
func (rp *RP) Mapping(table *genemap.Map) (recon.Mapping, error) {
	switch rp.mapping {
	case Identity:
		return recon.Identity, nil
	case Prefix:
		sep := rp.sep
		return func(id string) string {
			sp, _, _ := strings.Cut(id, sep)
			return sp
		}, nil
	case Suffix:
		sep := rp.sep
		return func(id string) string {
			i := strings.LastIndex(id, sep)
			if i < 0 {
				return id
			}
			return id[i+len(sep):]
		}, nil
	case Table:
		if table == nil {
			return nil, fmt.Errorf("mapping %q: gene map undefined", rp.mapping)
		}
		return table.Mapping(), nil
	}
	return nil, fmt.Errorf("unknown mapping %q", rp.mapping)
}

// Method returns the mapping method.
func (rp *RP) Method() string {
	return rp.mapping
}

// Name returns the name used for a set of parameters.
func (rp *RP) Name() string {
	return rp.name
}

// Separator returns the separator used
// for prefix and suffix mappings.
func (rp *RP) Separator() string {
	return rp.sep
}

// SetMapping sets the mapping method.
func (rp *RP) SetMapping(m string) error {
	m = strings.ToLower(strings.TrimSpace(m))
	switch m {
	case Identity:
	case Prefix:
	case Suffix:
	case Table:
	default:
		return fmt.Errorf("unknown mapping %q", m)
	}
	rp.mapping = m
	return nil
}

// SetName sets the name of a parameter collection.
func (rp *RP) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	rp.name = name
}

// SetSeparator sets the separator used
// for prefix and suffix mappings.
func (rp *RP) SetSeparator(sep string) error {
	if sep == "" {
		return fmt.Errorf("empty separator")
	}
	if strings.ContainsAny(sep, "\t\r\n") {
		return fmt.Errorf("invalid separator %q", sep)
	}
	rp.sep = sep
	return nil
}

// SetSpecies sets the name of the species tree.
func (rp *RP) SetSpecies(name string) {
	rp.species = strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// SetSplit sets the proportion of a branch
// assigned to the rooted node
// when a tree is rerooted.
func (rp *RP) SetSplit(s float64) error {
	if math.IsNaN(s) || s < 0 || s > 1 {
		return fmt.Errorf("invalid split value %.6f", s)
	}
	rp.split = s
	return nil
}

// Species returns the name of the species tree.
// An empty name means that the species collection
// must contain a single tree.
func (rp *RP) Species() string {
	return rp.species
}

// Split returns the proportion of a branch
// assigned to the rooted node
// when a tree is rerooted.
func (rp *RP) Split() float64 {
	return rp.split
}

// Write writes a parameter collection into a file.
func (rp *RP) Write() (err error) {
	f, err := os.Create(rp.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# phyrec reconciliation parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", rp.name, err)
	}

	rows := [][]string{
		{string(Mapping), rp.mapping},
		{string(Separator), rp.sep},
		{string(Split), strconv.FormatFloat(rp.split, 'f', 6, 64)},
	}
	if rp.species != "" {
		rows = append(rows, []string{string(Species), rp.species})
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", rp.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", rp.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", rp.name, err)
	}
	return nil
}
