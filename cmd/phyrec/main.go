// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyRec is a tool for the reconciliation
// of gene trees with species trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/cmd/phyrec/param"
	"github.com/js-arias/phyrec/cmd/phyrec/prj"
	"github.com/js-arias/phyrec/cmd/phyrec/reconcmd"
	"github.com/js-arias/phyrec/cmd/phyrec/rootcmd"
	"github.com/js-arias/phyrec/cmd/phyrec/tree"
)

var app = &command.Command{
	Usage: "phyrec <command> [<argument>...]",
	Short: "a tool for gene tree reconciliation",
}

func init() {
	app.Add(param.Command)
	app.Add(prj.Command)
	app.Add(reconcmd.Command)
	app.Add(rootcmd.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
