package types

import "reflect"

// Params is an insertion-ordered map of parameter names to values.
// The zero value is ready to use.
type Params struct {
	values map[string]any
	keys   []string
}

// NewParams creates an empty parameter map.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set binds a value. Rebinding an existing name keeps its original position.
func (p *Params) Set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Get returns the value bound to name.
func (p *Params) Get(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Len returns the number of bound parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Merge binds every parameter of other into p, in other's order.
func (p *Params) Merge(other *Params) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	out := NewParams()
	out.Merge(p)
	return out
}

// Subset returns the parameters named in names, in the order given.
// Names that are not bound are skipped.
func (p *Params) Subset(names []string) *Params {
	out := NewParams()
	for _, name := range names {
		if v, ok := p.Get(name); ok {
			out.Set(name, v)
		}
	}
	return out
}

// Map returns a copy of the bindings as a plain map.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, p.Len())
	if p == nil {
		return out
	}
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps bind the same names to deeply equal values.
// Order is ignored.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	for _, k := range p.Keys() {
		ov, ok := other.Get(k)
		if !ok {
			return false
		}
		v, _ := p.Get(k)
		if !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}
