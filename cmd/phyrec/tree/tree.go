// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with species and gene trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/add"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/draw"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/export"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/list"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/nodes"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/random"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/remove"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/reroot"
	"github.com/js-arias/phyrec/cmd/phyrec/tree/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for species and gene trees",
}

func init() {
	Command.Add(add.Command)
	Command.Add(draw.Command)
	Command.Add(export.Command)
	Command.Add(list.Command)
	Command.Add(nodes.Command)
	Command.Add(random.Command)
	Command.Add(remove.Command)
	Command.Add(reroot.Command)
	Command.Add(terms.Command)
}
