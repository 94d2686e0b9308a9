// Package io reads GraphML documents and writes converted graphs as DOT or
// JSON.
//
// # Import
//
// Use [ImportGraphML] to convert a file, or [ReadGraphML] to convert any
// io.Reader:
//
//	res, err := io.ImportGraphML(ctx, "deps.graphml", graphml.Options{GraphName: "G"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A file that cannot be opened yields a FILE_NOT_FOUND error; conversion
// errors are passed through unchanged (see [graphml.Decode]).
//
// # DOT Export
//
// [WriteDOT] and [ExportDOT] write Graphviz DOT through [dot.Write].
//
// # JSON Format
//
// [WriteJSON] dumps the graph tree. The root carries the direction, the
// strict flag and the attribute declarations; every graph lists its own
// attributes, its members and its subgraphs:
//
//	{
//	  "directed": true,
//	  "strict": false,
//	  "declarations": {
//	    "node": [{"name": "color", "default": "yellow"}]
//	  },
//	  "graph": {
//	    "name": "G",
//	    "nodes": [{"name": "a", "attrs": {"color": "green"}}, {"name": "b"}],
//	    "edges": [{"tail": "a", "head": "b"}],
//	    "subgraphs": [
//	      {"name": "cluster_0", "defaults": {"node": {"color": "red"}}, "nodes": [{"name": "a"}]}
//	    ]
//	  }
//	}
//
// Node and edge attributes are written on the root only; subgraphs list
// members by name. [ReadJSON] and [ImportJSON] rebuild the graph, so an
// export, import and second export produce identical output.
//
// [graphml.Decode]: github.com/matzehuels/graphml2gv/pkg/graphml.Decode
// [dot.Write]: github.com/matzehuels/graphml2gv/pkg/render/dot.Write
package io
