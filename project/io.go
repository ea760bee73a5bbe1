// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/collection"
	"github.com/js-arias/phyrec/genemap"
	"github.com/js-arias/phyrec/recon"
	"github.com/js-arias/phyrec/reconparam"
)

// DefaultParams is the name of the parameter file
// used when a project does not define one.
const DefaultParams = "params.tab"

// GeneMap reads a gene to species table
// as defined in a project.
// If the project does not have a gene map,
// it returns nil.
func (p *Project) GeneMap() (*genemap.Map, error) {
	name := p.Path(GeneMap)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := genemap.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// Genes reads the gene tree collection
// as defined in a project.
func (p *Project) Genes() (*collection.Collection, error) {
	return p.trees(Genes)
}

// Mapping returns the function used to retrieve
// the species of a gene,
// as defined by the given parameters.
// The gene map of the project is only read
// if the parameters use a table mapping.
func (p *Project) Mapping(rp *reconparam.RP) (recon.Mapping, error) {
	var table *genemap.Map
	if rp.Method() == reconparam.Table {
		m, err := p.GeneMap()
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("gene map not defined in project %q", p.name)
		}
		table = m
	}
	return rp.Mapping(table)
}

// Params reads the reconciliation parameters
// as defined in a project.
// If the project does not have a parameter file,
// or the file does not exist,
// it returns the default parameters.
func (p *Project) Params() (*reconparam.RP, error) {
	name := p.Path(Params)
	if name == "" {
		return reconparam.New(DefaultParams), nil
	}

	rp, err := reconparam.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		return reconparam.New(name), nil
	}
	if err != nil {
		return nil, err
	}
	return rp, nil
}

// Species reads the species tree collection
// as defined in a project.
func (p *Project) Species() (*collection.Collection, error) {
	return p.trees(Species)
}

// SpeciesTree returns the species tree
// used for reconciliations.
// If name is empty,
// the species collection must contain a single tree.
func (p *Project) SpeciesTree(name string) (*bintree.Node, error) {
	sc, err := p.Species()
	if err != nil {
		return nil, err
	}

	if name == "" {
		names := sc.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("project %q: %d species trees: a species tree name must be defined", p.name, len(names))
		}
		name = names[0]
	}

	t := sc.Tree(name)
	if t == nil {
		return nil, fmt.Errorf("project %q: species tree %q not found", p.name, name)
	}
	return t, nil
}

func (p *Project) trees(set Dataset) (*collection.Collection, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := collection.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
