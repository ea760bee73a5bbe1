// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/blind"
	"github.com/js-arias/phyrec/bintree"
	"github.com/js-arias/phyrec/recon"
)

const yStep = 12

type node struct {
	x    float64
	y    int
	topY int
	botY int

	// color of the vertical line
	color color.Color

	// color of the node mark
	// (nil for unreconciled nodes)
	event color.Color

	mid int
	tax string

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	root  *node
}

var (
	dupColor = blind.Sequential(blind.Iridescent, 1)
	spColor  = blind.Sequential(blind.Iridescent, 0)
)

func copyTree(t *bintree.Node, rec *recon.Reconciliation, xStep float64) svgTree {
	maxLosses := 0
	if rec != nil {
		for _, lb := range rec.Labels {
			if lb.Losses > maxLosses {
				maxLosses = lb.Losses
			}
		}
	}

	s := svgTree{}
	var build func(n *bintree.Node, anc *node, x float64) *node
	build = func(n *bintree.Node, anc *node, x float64) *node {
		nd := &node{
			x:     x*xStep + 10,
			color: color.Black,
			mid:   n.Mid(),
			anc:   anc,
		}
		if s.x < nd.x {
			s.x = nd.x
		}
		if n.IsLeaf() {
			nd.tax = n.ID()
			if len(nd.tax) > s.taxSz {
				s.taxSz = len(nd.tax)
			}
		}
		if rec != nil {
			if lb, ok := rec.Labels[n.Mid()]; ok {
				nd.event = spColor
				if lb.Event == recon.Duplication {
					nd.event = dupColor
				}
				if maxLosses > 0 {
					nd.color = blind.Gradient(float64(lb.Losses) / float64(maxLosses))
				}
			}
		}

		for _, c := range n.Children() {
			nd.desc = append(nd.desc, build(c, nd, x+c.Distance()))
		}
		return nd
	}
	s.root = build(t, nil, 0)
	s.prepare(s.root)
	s.y = s.y * yStep

	return s
}

func (s *svgTree) prepare(n *node) {
	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 5)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(s.x) + s.taxSz*6 + 20)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

func (n node) draw(e *xml.Encoder) {
	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(n.y)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(n.y)},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(n.topY)
	ln.Attr[3].Value = strconv.Itoa(n.botY)
	ln.Attr = append(ln.Attr, xml.Attr{Name: xml.Name{Local: "stroke"}, Value: rgb(n.color)})
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.event != nil {
		c := xml.StartElement{
			Name: xml.Name{Local: "circle"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "cx"}, Value: strconv.Itoa(int(n.x))},
				{Name: xml.Name{Local: "cy"}, Value: strconv.Itoa(n.y)},
				{Name: xml.Name{Local: "r"}, Value: "4"},
				{Name: xml.Name{Local: "stroke"}, Value: "none"},
				{Name: xml.Name{Local: "fill"}, Value: rgb(n.event)},
			},
		}
		e.EncodeToken(c)
		e.EncodeToken(c.End())
	}

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder) {
	if n.desc == nil {
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(n.y + 5)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.tax))
		e.EncodeToken(tx.End())
		return
	}

	if !noNodes {
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 5))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(n.y - 3)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "font-size"}, Value: "8"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(strconv.Itoa(n.mid)))
		e.EncodeToken(tx.End())
	}

	for _, d := range n.desc {
		d.label(e)
	}
}
