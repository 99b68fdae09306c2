package value

import "testing"

func TestMapSetGetHas(t *testing.T) {
	m := NewMap()
	m = m.Set(NewSymbol("a"), NewInt(1)).(Map)
	if !m.Has(NewSymbol("a")) {
		t.Fatalf("Has(a) should be true after Set")
	}
	if got := m.Get(NewSymbol("a")).String(); got != "1" {
		t.Fatalf("Get(a) = %s, want 1", got)
	}
	if m.Get(NewSymbol("missing")) != Nil {
		t.Fatalf("Get(missing) should return Nil")
	}
}

func TestMapSetPreservesExistingKeyPosition(t *testing.T) {
	m := NewMap()
	m = m.Set(NewSymbol("a"), NewInt(1)).(Map)
	m = m.Set(NewSymbol("b"), NewInt(2)).(Map)
	m = m.Set(NewSymbol("a"), NewInt(99)).(Map)
	keys := m.Keys()
	if len(keys) != 2 || keys[0].String() != "a" || keys[1].String() != "b" {
		t.Fatalf("Keys() = %v, want [a b] (re-setting a should not move it)", keys)
	}
	if got := m.Get(NewSymbol("a")).String(); got != "99" {
		t.Fatalf("Get(a) = %s, want 99", got)
	}
}

func TestMapDel(t *testing.T) {
	m := NewMap()
	m = m.Set(NewSymbol("a"), NewInt(1)).(Map)
	m = m.Set(NewSymbol("b"), NewInt(2)).(Map)
	m = m.Del(NewSymbol("a")).(Map)
	if m.Has(NewSymbol("a")) {
		t.Fatalf("Has(a) should be false after Del")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestMapEntriesInInsertionOrder(t *testing.T) {
	m := NewMap()
	m = m.Set(NewSymbol("b"), NewInt(2)).(Map)
	m = m.Set(NewSymbol("a"), NewInt(1)).(Map)
	entries := m.Entries()
	if len(entries) != 2 || entries[0][0].String() != "b" || entries[1][0].String() != "a" {
		t.Fatalf("Entries() out of insertion order: %v", entries)
	}
}

func TestMapString(t *testing.T) {
	m := NewMap()
	m = m.Set(NewSymbol("a"), NewInt(1)).(Map)
	if got := m.String(); got != "{a = 1}" {
		t.Fatalf("String() = %q, want %q", got, "{a = 1}")
	}
}

func TestMapCompare(t *testing.T) {
	a := NewMap().Set(NewSymbol("a"), NewInt(1)).(Map)
	b := NewMap().Set(NewSymbol("a"), NewInt(1)).(Map)
	c := NewMap().Set(NewSymbol("a"), NewInt(2)).(Map)
	if a.Compare(b) != 0 {
		t.Fatalf("equal maps should compare 0")
	}
	if !IsNaNCompare(a.Compare(c)) {
		t.Fatalf("maps differing in value should be not-comparable")
	}
}
