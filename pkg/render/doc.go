// Package render turns converted graphs into output formats.
//
// # DOT
//
// The [dot] subpackage serializes a [graph.Graph] as Graphviz DOT text and
// renders DOT to SVG or PNG through Graphviz:
//
//	src := dot.Marshal(g)
//	svg, err := dot.NewRenderer(cache.NewNullCache()).Render(ctx, src, "svg")
//
// [dot]: github.com/matzehuels/graphml2gv/pkg/render/dot
// [graph.Graph]: github.com/matzehuels/graphml2gv/pkg/graph.Graph
package render
