package cons

import "github.com/benbjohnson/immutable"

// Registry binds slot type names to slot types
type Registry struct {
	Bindings *immutable.Map
}

// NewRegistry builds a registry holding the built-in types and the given ones
func NewRegistry(slotTypes ...*SlotType) *Registry {
	r := &Registry{Bindings: immutable.NewMap(nil)}
	r.Register(Empty)
	r.Register(CellLink)
	for _, t := range slotTypes {
		r.Register(t)
	}
	return r
}

// Register binds a type by its name, replacing any type of the same name
func (r *Registry) Register(t *SlotType) {
	r.Bindings = r.Bindings.Set(t.Name(), t)
}

// Lookup finds a type by name
func (r *Registry) Lookup(name string) (*SlotType, bool) {
	value, found := r.Bindings.Get(name)
	if !found {
		return nil, false
	}
	return value.(*SlotType), true
}

// ByOpen finds the descender opened by the given bracket
func (r *Registry) ByOpen(open string) (*SlotType, bool) {
	return r.find(func(t *SlotType) bool { return t.MarksDescender() && t.Open() == open })
}

// ByClose finds the descender closed by the given bracket
func (r *Registry) ByClose(close string) (*SlotType, bool) {
	return r.find(func(t *SlotType) bool { return t.MarksDescender() && t.Close() == close })
}

// Descenders lists the registered descender types
func (r *Registry) Descenders() []*SlotType {
	var out []*SlotType
	r.Each(func(t *SlotType) {
		if t.MarksDescender() {
			out = append(out, t)
		}
	})
	return out
}

// Len counts the registered types
func (r *Registry) Len() int {
	return r.Bindings.Len()
}

// Each visits every registered type
func (r *Registry) Each(fn func(*SlotType)) {
	itr := r.Bindings.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		fn(v.(*SlotType))
	}
}

func (r *Registry) find(pred func(*SlotType) bool) (*SlotType, bool) {
	itr := r.Bindings.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		if t := v.(*SlotType); pred(t) {
			return t, true
		}
	}
	return nil, false
}
