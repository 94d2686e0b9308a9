// Package dot writes attributed graphs as Graphviz DOT and renders DOT
// through Graphviz.
//
// # Serialization
//
// [Write] emits the root graph header ("strict" if set, "digraph" or
// "graph", then the name), the declared attribute defaults, the root's own
// attributes, every subgraph with its local defaults and attributes, and
// finally nodes and edges. A node is written with its attributes the first
// time it appears; later subgraphs list it by name only so membership is
// kept. Each edge is written once, in the first graph that contains it.
//
//	strict digraph G {
//		node [shape=box];
//		rankdir=LR;
//		subgraph cluster_0 {
//			node [color=red];
//			x;
//		}
//		x -> y [tailport=n];
//	}
//
// Identifiers are quoted only when DOT requires it; see [ID].
//
// # Rendering
//
// [Renderer] turns DOT text into SVG or PNG using the go-graphviz bindings.
// Rendered artifacts are cached by the hash of the DOT text.
package dot
