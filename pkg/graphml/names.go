package graphml

import "github.com/emirpasic/gods/maps/treemap"

// nameTable maps the name an object was declared with to the name it was
// renamed to. Iteration is ordered by original name.
type nameTable struct {
	m *treemap.Map
}

func newNameTable() *nameTable {
	return &nameTable{m: treemap.NewWithStringComparator()}
}

// insert records a rename. An original name is only ever renamed once per
// document, so a second insert is a converter bug.
func (t *nameTable) insert(name, unique string) {
	if _, found := t.m.Get(name); found {
		fatalf("name %q already mapped", name)
	}
	t.m.Put(name, unique)
}

func (t *nameTable) lookup(name string) (string, bool) {
	v, found := t.m.Get(name)
	if !found {
		return "", false
	}
	return v.(string), true
}

// resolve follows renames from name to the name the object holds now.
// A chain that comes back to a visited name stops there.
func (t *nameTable) resolve(name string) string {
	seen := map[string]bool{name: true}
	for {
		next, ok := t.lookup(name)
		if !ok {
			return name
		}
		if seen[next] {
			return next
		}
		seen[next] = true
		name = next
	}
}

func (t *nameTable) len() int { return t.m.Size() }

// each calls fn for every rename in original-name order.
func (t *nameTable) each(fn func(name, unique string)) {
	t.m.Each(func(k, v interface{}) {
		fn(k.(string), v.(string))
	})
}
