// Package graphml converts GraphML documents into attributed graphs.
//
// The converter is event driven: the markup scanner reports element starts,
// element ends and character data, and the converter builds the graph as it
// goes, in a single forward pass without lookahead.
//
// # Element Vocabulary
//
//	graphml   container, ignored
//	graph     root graph or subgraph (id, edgedefault)
//	node      node of the current graph (id)
//	edge      edge of the current graph (id, source, target, sourceport, targetport)
//	attr      attribute value: <attr name="color">red</attr>
//	          with for="node|edge|graph" the value is a global default
//	key       GraphML key declaration (id, for, attr.name)
//	default   global default for the enclosing key
//	data      attribute value for a declared key: <data key="d0">red</data>
//
// Any other element is reported as a diagnostic and skipped. Elements nested
// inside an attribute value turn it into a composite value: all of its text
// is concatenated and stored under "_graphml_composite_<name>".
//
// # Special Attributes
//
//	name       renames the node or graph; edges declared later may still use the old name
//	strict     "true" on the root graph makes it strict
//	headport   swapped with tailport when the stored edge is inverted
//	tailport   swapped with headport when the stored edge is inverted
//
// Global defaults for nodes and edges are named "node:<key>" and "edge:<key>".
//
// # Inversion
//
// Edges are deduplicated by the graph model. In an undirected graph a second
// edge declared as (b, a) fetches the existing (a, b) edge. The converter
// notices that the stored tail is the declared target and swaps port
// attributes written while that edge element is open.
//
// # Errors
//
// Conditions the converter can work around are collected as [Diagnostic]
// values and logged; see [Decode] for the errors that abort a document.
package graphml
