package value

import "strings"

// seq is the shared persistent backing store for Expression and List (spec
// §9 design note: "a single persistent sequence... suffices to satisfy both
// contracts"). Every mutator returns a new seq; the original is untouched.
type seq struct {
	items []Value
}

func newSeq(items ...Value) seq {
	return seq{items: items}
}

func (s seq) len() int { return len(s.items) }

func (s seq) lead() Value {
	if len(s.items) == 0 {
		return Nil
	}
	return s.items[0]
}

func (s seq) last() Value {
	if len(s.items) == 0 {
		return Nil
	}
	return s.items[len(s.items)-1]
}

func (s seq) placeLead(v Value) seq {
	next := make([]Value, 0, len(s.items)+1)
	next = append(next, v)
	next = append(next, s.items...)
	return seq{items: next}
}

func (s seq) placeLast(v Value) seq {
	next := make([]Value, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, v)
	return seq{items: next}
}

func (s seq) dropLead() seq {
	if len(s.items) == 0 {
		return s
	}
	return seq{items: append([]Value{}, s.items[1:]...)}
}

func (s seq) dropLast() seq {
	if len(s.items) == 0 {
		return s
	}
	return seq{items: append([]Value{}, s.items[:len(s.items)-1]...)}
}

func (s seq) reverse() seq {
	n := len(s.items)
	out := make([]Value, n)
	for i, v := range s.items {
		out[n-1-i] = v
	}
	return seq{items: out}
}

// has reports structural membership: does any element equal key.
func (s seq) has(key Value) bool {
	for _, v := range s.items {
		if Equal(v, key) {
			return true
		}
	}
	return false
}

// index interprets key as an ordinal Number index into the sequence,
// returning -1 when key is not an in-range integer Number.
func (s seq) index(key Value) int {
	n, ok := key.(Number)
	if !ok || !n.IsInteger() {
		return -1
	}
	i, ok := n.AsInt64()
	if !ok {
		return -1
	}
	if i < 0 || int(i) >= len(s.items) {
		return -1
	}
	return int(i)
}

func (s seq) get(key Value) Value {
	i := s.index(key)
	if i < 0 {
		return Nil
	}
	return s.items[i]
}

func (s seq) set(key, val Value) seq {
	i := s.index(key)
	if i < 0 {
		return s
	}
	next := append([]Value{}, s.items...)
	next[i] = val
	return seq{items: next}
}

func (s seq) del(key Value) seq {
	i := s.index(key)
	if i < 0 {
		return s
	}
	next := make([]Value, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	return seq{items: next}
}

func (s seq) compare(o seq) float64 {
	if len(s.items) != len(o.items) {
		return NaN()
	}
	for i := range s.items {
		c, ok := s.items[i].(Comparable)
		if !ok {
			if Equal(s.items[i], o.items[i]) {
				continue
			}
			return NaN()
		}
		if cmp := c.Compare(o.items[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func (s seq) printJoined(open, close string) string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = v.String()
	}
	return open + strings.Join(parts, " ") + close
}
