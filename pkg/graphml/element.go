package graphml

import "github.com/matzehuels/graphml2gv/pkg/graph"

// element is the closed set of markup elements the converter reacts to.
type element int

const (
	elemUnknown element = iota
	elemGraphML
	elemGraph
	elemNode
	elemEdge
	elemAttr
	elemKey
	elemDefault
	elemData
)

func elementOf(name string) element {
	switch name {
	case "graphml":
		return elemGraphML
	case "graph":
		return elemGraph
	case "node":
		return elemNode
	case "edge":
		return elemEdge
	case "attr":
		return elemAttr
	case "key":
		return elemKey
	case "default":
		return elemDefault
	case "data":
		return elemData
	default:
		return elemUnknown
	}
}

// kind is the element kind the converter is currently inside. It drives
// attribute routing and records which element closed last.
type kind int

const (
	kindNone kind = iota
	kindGraph
	kindNode
	kindEdge
)

func (k kind) String() string {
	switch k {
	case kindGraph:
		return "graph"
	case kindNode:
		return "node"
	case kindEdge:
		return "edge"
	default:
		return "none"
	}
}

// kindOf parses a scope as written in "for" attributes.
func kindOf(s string) (kind, bool) {
	switch s {
	case "graph":
		return kindGraph, true
	case "node":
		return kindNode, true
	case "edge":
		return kindEdge, true
	default:
		return kindNone, false
	}
}

func (k kind) model() graph.Kind {
	switch k {
	case kindNode:
		return graph.KindNode
	case kindEdge:
		return graph.KindEdge
	default:
		return graph.KindGraph
	}
}

// Attr is one markup attribute of an opened element.
type Attr struct {
	Key   string
	Value string
}

// attrValue returns the value of the first attribute named key.
func attrValue(attrs []Attr, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
