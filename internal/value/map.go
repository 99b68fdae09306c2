package value

import "strings"

// Map is an insertion-ordered associative collection, printed as
// "{k = v, k = v}" (spec §3, §5.9). SPEC_FULL.md §3 replaces the original's
// balanced-tree dictionary with a Go map plus a parallel key slice; Entries
// and String follow that slice, so entries appear in insertion order.
type Map struct {
	keys   []Value
	values map[string]Value
}

func NewMap() Map {
	return Map{values: map[string]Value{}}
}

func (Map) Kind() Kind { return KindMap }
func (m Map) Is() bool { return len(m.keys) > 0 }

func (m Map) String() string {
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = k.String() + " = " + m.values[k.String()].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m Map) Len() int { return len(m.keys) }

func (m Map) Has(key Value) bool {
	_, ok := m.values[key.String()]
	return ok
}

func (m Map) Get(key Value) Value {
	v, ok := m.values[key.String()]
	if !ok {
		return Nil
	}
	return v
}

// Set returns a copy of m with key bound to val, preserving the key's
// existing position if already present, else appending it (spec §5.9).
func (m Map) Set(key, val Value) Value {
	k := key.String()
	values := make(map[string]Value, len(m.values)+1)
	for sk, sv := range m.values {
		values[sk] = sv
	}
	_, existed := values[k]
	values[k] = val
	keys := m.keys
	if !existed {
		keys = append(append([]Value{}, m.keys...), key)
	}
	return Map{keys: keys, values: values}
}

func (m Map) Del(key Value) Value {
	k := key.String()
	if _, ok := m.values[k]; !ok {
		return m
	}
	values := make(map[string]Value, len(m.values))
	keys := make([]Value, 0, len(m.keys)-1)
	for _, ek := range m.keys {
		if ek.String() == k {
			continue
		}
		keys = append(keys, ek)
		values[ek.String()] = m.values[ek.String()]
	}
	return Map{keys: keys, values: values}
}

func (m Map) Clear() Value { return NewMap() }

func (m Map) Compare(other Value) float64 {
	om, ok := other.(Map)
	if !ok {
		return NaN()
	}
	if len(m.keys) != len(om.keys) {
		return NaN()
	}
	for _, k := range m.keys {
		ks := k.String()
		ov, ok := om.values[ks]
		if !ok || !Equal(m.values[ks], ov) {
			return NaN()
		}
	}
	return 0
}

// Keys returns the map's keys in insertion order.
func (m Map) Keys() []Value {
	return append([]Value{}, m.keys...)
}

// Entries returns the map's key/value pairs in insertion order, used by
// MAPJSON/JSONMAP (spec §5.9) to build a deterministic JSON object.
func (m Map) Entries() [][2]Value {
	out := make([][2]Value, len(m.keys))
	for i, k := range m.keys {
		out[i] = [2]Value{k, m.values[k.String()]}
	}
	return out
}
