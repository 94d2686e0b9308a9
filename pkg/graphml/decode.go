package graphml

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/observability"
)

// Options configures a conversion.
type Options struct {
	// GraphName names graphs whose markup carries no id.
	GraphName string
	// Logger receives diagnostics. Defaults to log.Default().
	Logger *log.Logger
	// Source identifies the input in hooks and logs (e.g. a file path).
	Source string
}

// Rename records an object renamed by a "name" attribute.
type Rename struct {
	From string
	To   string
}

// Result is a converted document.
type Result struct {
	// Graph is the root graph, or nil if the document declared no graph.
	Graph *graph.Graph
	// Diagnostics lists advisory conditions in document order.
	Diagnostics []Diagnostic
	// Renames lists renames ordered by original name.
	Renames []Rename
}

// Decode converts one GraphML document read from r.
//
// Malformed markup yields an error with code MALFORMED_DOCUMENT whose
// line is available through errors.LineOf. A broken converter invariant,
// such as an end tag with no open element to match, yields INTERNAL_ERROR;
// callers processing several documents should stop on it.
//
// Decode reads r in a single forward pass and does not close it.
func Decode(ctx context.Context, r io.Reader, opts Options) (res *Result, err error) {
	start := time.Now()
	observability.Convert().OnConvertStart(ctx, opts.Source)
	defer func() {
		var nodes, edges int
		if res != nil && res.Graph != nil {
			nodes, edges = res.Graph.NodeCount(), res.Graph.EdgeCount()
		}
		observability.Convert().OnConvertComplete(ctx, opts.Source, nodes, edges, time.Since(start), err)
	}()

	c := newConverter(ctx, opts)
	s := newScanner(r)
	c.line = s.line

	if err := c.run(s); err != nil {
		return nil, err
	}

	res = &Result{Graph: c.graphs.root, Diagnostics: c.diags}
	c.names.each(func(from, to string) {
		res.Renames = append(res.Renames, Rename{From: from, To: to})
	})
	return res, nil
}

// run drives the scanner and turns invariant panics into errors.
func (c *converter) run(s *scanner) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			err = errs.New(errs.ErrCodeInternal, "%s at line %d", f.msg, s.line())
		}
	}()
	return s.run(c)
}
