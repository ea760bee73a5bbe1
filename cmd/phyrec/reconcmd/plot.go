// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reconcmd

import (
	"fmt"

	"github.com/js-arias/phyrec/batch"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func makePlot(res []batch.Result) error {
	if len(res) == 0 {
		return fmt.Errorf("no reconciled trees")
	}

	p := plot.New()
	p.X.Label.Text = "events (duplications + losses)"
	p.Y.Label.Text = "gene trees"

	vals := make(plotter.Values, 0, len(res))
	maxEv := 0
	for _, r := range res {
		ev := r.Dups + r.Losses
		if ev > maxEv {
			maxEv = ev
		}
		vals = append(vals, float64(ev))
	}

	bins := maxEv + 1
	if bins > 50 {
		bins = 50
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
