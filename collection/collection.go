// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package collection implements a collection
// of named phylogenetic trees
// with branch lengths.
package collection

import (
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/phyrec/bintree"
)

// A Collection is a set of trees
// identified by name.
type Collection struct {
	trees map[string]*bintree.Node
}

// New creates a new empty collection.
func New() *Collection {
	return &Collection{
		trees: make(map[string]*bintree.Node),
	}
}

// Add adds a tree to the collection.
// It returns an error if the name is empty,
// or there is a tree with the same name
// already in the collection.
func (c *Collection) Add(name string, t *bintree.Node) error {
	name = canon(name)
	if name == "" {
		return fmt.Errorf("empty tree name")
	}
	if t == nil {
		return fmt.Errorf("tree %q: undefined tree", name)
	}
	if _, dup := c.trees[name]; dup {
		return fmt.Errorf("tree %q already in collection", name)
	}
	if err := bintree.Validate(t); err != nil {
		return fmt.Errorf("tree %q: %w", name, err)
	}
	c.trees[name] = t
	return nil
}

// Set sets a tree with the given name,
// replacing any previous tree with the same name.
func (c *Collection) Set(name string, t *bintree.Node) {
	name = canon(name)
	if name == "" || t == nil {
		return
	}
	c.trees[name] = t
}

// Delete removes a tree from the collection.
func (c *Collection) Delete(name string) {
	delete(c.trees, canon(name))
}

// Len returns the number of trees
// in the collection.
func (c *Collection) Len() int {
	return len(c.trees)
}

// Names returns the names of the trees
// in the collection.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.trees))
	for n := range c.trees {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Tree returns a tree with a given name.
// It returns nil if there is no tree with that name.
//
// The returned tree is shared with the collection.
// As numbering a tree modifies its annotations,
// use bintree.Copy before numbering
// a tree that is used concurrently.
func (c *Collection) Tree(name string) *bintree.Node {
	return c.trees[canon(name)]
}

func canon(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
