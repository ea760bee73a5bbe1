// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(geneMapsGuide)
	app.Add(parametersGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyRec requires several files to read and process gene and species trees. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using phyrec commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phyrec project files
	dataset	path
	genes	genes.tab
	genemap	gene-map.tab
	params	params.tab
	species	species.tab

The valid file types are:

- Species trees. Defined by the dataset keyword "species". This file contains
  one or more species trees in the form of a tab-delimited file. The
  recommended way to add a species tree file is by using the command
  'phyrec tree add'.
- Gene trees. Defined by the dataset keyword "genes". This file contains one
  or more gene trees in the form of a tab-delimited file. The recommended way
  to add a gene tree file is by using the command 'phyrec tree add --genes'.
- Gene maps. Defined by the dataset keyword "genemap". This file contains the
  species assigned to each gene in the form of a tab-delimited file. The
  recommended way to add a gene map is by using the command
  'phyrec param --genemap'.
- Parameters. Defined by the dataset keyword "params". This file contains the
  parameters used for the reconciliations. The recommended way to edit the
  parameters is by using the command 'phyrec param'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
PhyRec stores species and gene trees in tab-delimited files with the following
fields:

	- tree    the name of the tree
	- newick  the tree in newick (parenthetical) format

Here is an example file:

	# phyrec trees
	tree	newick
	mammals	(((human:0.1,chimp:0.1):0.2,baboon:0.3):0.5,(rat:0.4,mouse:0.4):0.4);

Tree names are case insensitive, and stored in lower case.

The newick reader is lax: labels can be quoted with single quotes, internal
nodes can be labeled, and branch lengths are optional (a missing branch length
is set as 0.001). Nodes with more than two descendants are resolved as a
sequence of nodes with zero length branches. Nodes with a single descendant
are removed, and its branch length is added to the branch of its descendant.
	`,
}

var geneMapsGuide = &command.Command{
	Usage: "gene-maps",
	Short: "about gene map files",
	Long: `
When genes are not named after its species, PhyRec requires a table to assign
each gene to a species. A gene map file is a tab-delimited file with the
following fields:

	- gene     the name of the gene, as used in the gene trees
	- species  the name of the species, as used in the species tree

Here is an example file:

	gene	species
	HBA1	human
	HBA2	human
	Hba-a1	mouse

Gene and species names are case sensitive. Each gene can be assigned to a
single species. To use the gene map, the mapping parameter must be set to
"table" (see 'phyrec help parameters').
	`,
}

var parametersGuide = &command.Command{
	Usage: "parameters",
	Short: "about the reconciliation parameters",
	Long: `
The parameters used for the reconciliation are stored in a tab-delimited file
with the following fields:

	- parameter  the name of the parameter
	- value      the value of the parameter

Here is an example file:

	# phyrec reconciliation parameters
	parameter	value
	mapping	prefix
	separator	_
	species	mammals
	split	0.500000

The valid parameters are:

- mapping: the method used to retrieve the species of a gene. Valid values
  are "identity" (the gene name is the species name), "prefix" (the species
  name is the part of the gene name before the separator), "suffix" (the
  species name is the part of the gene name after the last separator), and
  "table" (the species is taken from the gene map of the project). The
  default is "identity".
- separator: the separator used by the "prefix" and "suffix" mappings. The
  default is "_".
- species: the name of the species tree used for the reconciliations. It is
  only required if the project has more than one species tree.
- split: the proportion of the branch assigned to the node used as the new
  root when a tree is rerooted. The default is 0.5 (i.e., the mid point of the
  branch).
	`,
}
