package graphml

import "fmt"

// DiagnosticKind classifies an advisory condition. Diagnostics never stop
// the conversion; the offending piece of input is skipped or defaulted.
type DiagnosticKind string

const (
	DiagUnknownElement  DiagnosticKind = "unknown-element"
	DiagNoEdgeDefault   DiagnosticKind = "missing-edgedefault"
	DiagOutsideGraph    DiagnosticKind = "outside-graph"
	DiagMissingID       DiagnosticKind = "missing-id"
	DiagMissingEndpoint DiagnosticKind = "missing-endpoint"
	DiagMissingPrefix   DiagnosticKind = "missing-prefix"
	DiagNestedGraph     DiagnosticKind = "nested-graph"
	DiagOrphanAttr      DiagnosticKind = "orphan-attribute"
	DiagUnknownScope    DiagnosticKind = "unknown-scope"
	DiagRename          DiagnosticKind = "rename-failed"
	DiagStrict          DiagnosticKind = "strict-ignored"
)

// Diagnostic is an advisory message raised while converting a document.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Message string
}

// String formats the diagnostic as "line N: message".
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}
