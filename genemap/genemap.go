// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genemap provides a table
// that assigns the genes of gene trees
// to the species of a species tree.
package genemap

import (
	"fmt"
	"slices"
	"strings"
)

// Map is a collection of gene to species assignments.
type Map struct {
	gene map[string]string
}

// New creates a new empty map.
func New() *Map {
	return &Map{
		gene: make(map[string]string),
	}
}

// Add assigns a gene to a species.
// A gene can be assigned to a single species,
// so it returns an error if the gene
// is already assigned to a different species.
func (m *Map) Add(gene, species string) error {
	gene = canon(gene)
	if gene == "" {
		return nil
	}
	species = canon(species)
	if species == "" {
		return nil
	}

	if prev, ok := m.gene[gene]; ok && prev != species {
		return fmt.Errorf("gene %q: already assigned to species %q", gene, prev)
	}
	m.gene[gene] = species
	return nil
}

// Species returns the species assigned to a gene.
// It returns an empty string
// if the gene is not in the map.
func (m *Map) Species(gene string) string {
	return m.gene[canon(gene)]
}

// Genes returns the genes assigned to a species.
// If species is empty,
// it returns all the genes in the map.
func (m *Map) Genes(species string) []string {
	species = canon(species)

	var genes []string
	for g, s := range m.gene {
		if species != "" && s != species {
			continue
		}
		genes = append(genes, g)
	}
	slices.Sort(genes)
	return genes
}

// SpeciesList returns the species
// with assigned genes.
func (m *Map) SpeciesList() []string {
	sp := make(map[string]bool)
	for _, s := range m.gene {
		sp[s] = true
	}

	ls := make([]string, 0, len(sp))
	for s := range sp {
		ls = append(ls, s)
	}
	slices.Sort(ls)
	return ls
}

// Mapping returns a function
// that returns the species of a gene.
// Genes not found in the map
// are returned unchanged,
// so they can be identified by their own name.
func (m *Map) Mapping() func(gene string) string {
	return func(gene string) string {
		if s, ok := m.gene[canon(gene)]; ok {
			return s
		}
		return gene
	}
}

// Canon returns a name
// with its spaces normalized.
// Gene and species names are case sensitive.
func canon(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
