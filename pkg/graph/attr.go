package graph

// Declare declares attribute key for objects of kind with default def.
//
// On the root graph the declaration is created, or its default replaced.
// On a subgraph the key is first declared on the root with an empty default
// if it is not declared yet, and def becomes a default local to the subgraph.
// The returned Sym always belongs to the root.
func (g *Graph) Declare(kind Kind, key, def string) *Sym {
	root := g.root
	sym := root.Lookup(kind, key)
	if g.IsRoot() {
		if sym == nil {
			sym = &Sym{Kind: kind, Name: key}
			root.syms[kind] = append(root.syms[kind], sym)
		}
		sym.Default = def
		return sym
	}
	if sym == nil {
		sym = root.Declare(kind, key, "")
	}
	g.defaults[kind].set(key, def)
	return sym
}

// Lookup returns the root declaration of key for kind, or nil.
func (g *Graph) Lookup(kind Kind, key string) *Sym {
	for _, s := range g.root.syms[kind] {
		if s.Name == key {
			return s
		}
	}
	return nil
}

// Syms returns the root declarations for kind in declaration order.
func (g *Graph) Syms(kind Kind) []*Sym { return g.root.syms[kind] }

// Defaults returns the defaults local to g for kind. For the root graph the
// declared defaults live on the [Sym] values instead.
func (g *Graph) Defaults(kind Kind) *Attrs { return &g.defaults[kind] }

// Set stores value for sym on obj.
func (g *Graph) Set(obj Object, sym *Sym, value string) {
	obj.values().set(sym.Name, value)
}

// Get returns the value of sym on obj, falling back to the nearest default.
// For a subgraph, or a node or edge read through a subgraph, local defaults
// of g and its ancestors take precedence over the root declaration.
func (g *Graph) Get(obj Object, sym *Sym) string {
	if v, ok := obj.values().Get(sym.Name); ok {
		return v
	}
	scope := g
	if sg, ok := obj.(*Graph); ok {
		scope = sg
	}
	for s := scope; s != nil && !s.IsRoot(); s = s.parent {
		if v, ok := s.defaults[sym.Kind].Get(sym.Name); ok {
			return v
		}
	}
	return sym.Default
}
