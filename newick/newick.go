// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a lax reader
// and a writer
// of trees in newick (parenthetical) format.
//
// The reader accepts unquoted or single-quoted labels,
// internal node labels,
// and optional branch lengths.
// Nodes with more than two descendants
// are resolved as a left comb
// with zero length internal branches.
package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/js-arias/phyrec/bintree"
)

// DefaultDistance is the branch length
// used for nodes without an explicit branch length.
const DefaultDistance = 0.001

// Options are the options used to read a newick tree.
type Options struct {
	// Branch length used when a node
	// does not have a defined branch length.
	DefaultDistance float64

	// If true,
	// a group with a single descendant
	// is read as a unary node.
	// By default,
	// unary groups are collapsed
	// and its branch length is added
	// to the branch of its descendant.
	ReportUnary bool
}

// Parse reads a single tree from a string
// using the default options.
func Parse(s string) (*bintree.Node, error) {
	return Options{DefaultDistance: DefaultDistance}.Parse(s)
}

// Read reads one or more trees from r
// using the default options.
// Each tree must be terminated by a semicolon.
func Read(r io.Reader) ([]*bintree.Node, error) {
	return Options{DefaultDistance: DefaultDistance}.Read(r)
}

// Parse reads a single tree from a string.
func (o Options) Parse(s string) (*bintree.Node, error) {
	tk, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{tk: tk, opt: o}
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	if p.peek() != 0 {
		return nil, fmt.Errorf("newick: token %d: unexpected data after tree", p.i)
	}
	return t, nil
}

// Read reads one or more trees from r.
// Each tree must be terminated by a semicolon.
func (o Options) Read(r io.Reader) ([]*bintree.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tk, err := tokenize(string(b))
	if err != nil {
		return nil, err
	}

	p := &parser{tk: tk, opt: o}
	var ts []*bintree.Node
	for p.peek() != 0 {
		t, err := p.tree()
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", len(ts)+1, err)
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("newick: while reading data: %w", io.EOF)
	}
	return ts, nil
}

const labelKind = 'l'

type token struct {
	kind byte
	val  string
}

func tokenize(s string) ([]token, error) {
	var tk []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '(' || c == ')' || c == ',' || c == ':' || c == ';':
			tk = append(tk, token{kind: c})
			i++
		case unicode.IsSpace(rune(c)):
			i++
		case c == '\'':
			var sb strings.Builder
			i++
			closed := false
			for i < len(s) {
				if s[i] == '\'' {
					if i+1 < len(s) && s[i+1] == '\'' {
						sb.WriteByte('\'')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				sb.WriteByte(s[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("newick: unterminated quoted label %q", sb.String())
			}
			tk = append(tk, token{kind: labelKind, val: sb.String()})
		default:
			j := i
			for j < len(s) && !strings.ContainsRune("(),:;'", rune(s[j])) && !unicode.IsSpace(rune(s[j])) {
				j++
			}
			tk = append(tk, token{kind: labelKind, val: s[i:j]})
			i = j
		}
	}
	return tk, nil
}

type parser struct {
	tk  []token
	i   int
	opt Options
}

func (p *parser) peek() byte {
	if p.i < len(p.tk) {
		return p.tk[p.i].kind
	}
	return 0
}

func (p *parser) tree() (*bintree.Node, error) {
	t, err := p.subtree()
	if err != nil {
		return nil, err
	}
	switch p.peek() {
	case ';':
		p.i++
	case 0:
	default:
		return nil, fmt.Errorf("newick: token %d: expecting ';'", p.i)
	}
	return t, nil
}

func (p *parser) subtree() (*bintree.Node, error) {
	if p.peek() != '(' {
		id := p.label()
		if id == "" {
			return nil, fmt.Errorf("newick: token %d: leaf without label: %w", p.i, bintree.ErrMalformed)
		}
		d, err := p.distance()
		if err != nil {
			return nil, err
		}
		return bintree.NewLeaf(id, d), nil
	}

	p.i++
	var desc []*bintree.Node
group:
	for {
		switch p.peek() {
		case ',':
			p.i++
			continue
		case ')':
			p.i++
			break group
		case 0, ';':
			return nil, fmt.Errorf("newick: token %d: unbalanced parenthesis", p.i)
		}
		d, err := p.subtree()
		if err != nil {
			return nil, err
		}
		desc = append(desc, d)
	}
	if len(desc) == 0 {
		return nil, fmt.Errorf("newick: token %d: empty group: %w", p.i, bintree.ErrMalformed)
	}

	id := p.label()
	d, err := p.distance()
	if err != nil {
		return nil, err
	}

	if len(desc) == 1 {
		if p.opt.ReportUnary {
			return bintree.NewUnary(desc[0], d).WithID(id), nil
		}
		c := desc[0]
		return c.WithDistance(c.Distance() + d), nil
	}

	n := desc[0]
	for i, c := range desc[1:] {
		var brLen float64
		if i == len(desc)-2 {
			brLen = d
		}
		n = bintree.NewNode(n, c, brLen)
	}
	return n.WithID(id), nil
}

func (p *parser) label() string {
	if p.peek() != labelKind {
		return ""
	}
	v := p.tk[p.i].val
	p.i++
	return v
}

func (p *parser) distance() (float64, error) {
	if p.peek() != ':' {
		return p.opt.DefaultDistance, nil
	}
	p.i++
	if p.peek() != labelKind {
		return 0, fmt.Errorf("newick: token %d: expecting branch length", p.i)
	}
	v := p.tk[p.i].val
	p.i++
	d, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("newick: token %d: invalid branch length %q: %v", p.i-1, v, err)
	}
	return d, nil
}

// String returns a tree in newick format.
// If distances is true,
// the branch lengths are included.
func String(n *bintree.Node, distances bool) string {
	var sb strings.Builder
	write(&sb, n, distances)
	sb.WriteByte(';')
	return sb.String()
}

func write(sb *strings.Builder, n *bintree.Node, distances bool) {
	if !n.IsLeaf() {
		sb.WriteByte('(')
		write(sb, n.Left(), distances)
		if r := n.Right(); r != nil {
			sb.WriteByte(',')
			write(sb, r, distances)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(quote(n.ID()))
	if distances {
		fmt.Fprintf(sb, ":%f", n.Distance())
	}
}

func quote(id string) string {
	if !strings.ContainsAny(id, "(),:;' \t\r\n") {
		return id
	}
	return "'" + strings.ReplaceAll(id, "'", "''") + "'"
}
