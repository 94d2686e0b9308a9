// Package pkg provides the libraries behind graphml2gv, a converter from
// GraphML documents to Graphviz graphs.
//
// # Overview
//
// The data flow through graphml2gv:
//
//	GraphML document
//	       ↓
//	  [graphml] package (streaming converter: elements → graph operations)
//	       ↓
//	  [graph] package (attributed graph with subgraphs and defaults)
//	       ↓
//	  [render/dot] package (DOT text, SVG/PNG through Graphviz)
//
// # Quick Start
//
// Convert a document and print it as DOT:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/graphml2gv/pkg/graphml"
//	    "github.com/matzehuels/graphml2gv/pkg/render/dot"
//	)
//
//	res, err := graphml.Decode(context.Background(), os.Stdin, graphml.Options{GraphName: "G"})
//	if err != nil {
//	    return err
//	}
//	if res.Graph != nil {
//	    dot.Write(os.Stdout, res.Graph)
//	}
//
// # Packages
//
// [graph] - The attributed graph model: a root graph owning attribute
// declarations, nested subgraphs with local defaults, nodes and edges that
// belong to every graph on the path to the root.
//
// [graphml] - The GraphML converter. It scans markup with a stack of open
// elements and a stack of open graphs, maps keys to attribute declarations,
// renames nodes to their "name" attribute and reports advisory diagnostics.
//
// [render/dot] - Writes graphs as DOT and renders DOT to SVG or PNG with the
// embedded Graphviz, caching artifacts through [cache].
//
// [io] - File helpers: read GraphML, read and write the JSON form of a
// graph, write DOT files.
//
// [cache] - Artifact caching with file and no-op backends.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for conversion and rendering events.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/graph
// [graphml]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/graphml
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/render/dot
// [io]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphml2gv/pkg/observability
package pkg
