// Package value implements Oliver's tagged, immutable value model (spec §3).
// Every variant is a small immutable Go type satisfying the Value interface;
// mutation is always expressed by constructing a new value. Because user
// values are acyclic trees (spec §3 "Lifecycles"), plain Go garbage
// collection stands in for the original's reference counting — no variant
// here holds a reference back to anything that could create a cycle.
package value

import "math"

// Kind discriminates the tagged union's variants.
type Kind int

const (
	KindNothing Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindSymbol
	KindOpCall
	KindError
	KindExpression
	KindList
	KindLambda
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindOpCall:
		return "op_call"
	case KindError:
		return "error"
	case KindExpression:
		return "expression"
	case KindList:
		return "list"
	case KindLambda:
		return "lambda"
	case KindMap:
		return "map"
	default:
		return "?"
	}
}

// Value is satisfied by every variant of the tagged union. It is the
// smallest common surface: printing, truthiness, and the type tag. Richer
// behavior (comparison, sequence/associative operations) is exposed through
// the optional capability interfaces below, the way the teacher's runtime
// package splits Value from ComparableValue/IndexableValue/etc.
type Value interface {
	Kind() Kind
	// Is reports the value's truthiness. Nothing, Errors, empty sequences,
	// strings and maps, false booleans, zero numbers, empty-named symbols and
	// lambdas with no args and no body are false; everything else is true.
	Is() bool
	// String renders the value the way EMIT and STACK/QUEUE snapshots do.
	String() string
}

// Comparable is satisfied by variants with a total (or partial, NaN-capable)
// ordering. Compare returns -1/0/1, or NaN when the two values are not
// comparable (different variants, complex vs. real numbers, and so on).
type Comparable interface {
	Value
	Compare(other Value) float64
}

// Sequence is satisfied by the ordered, two-ended variants: Expression,
// List, and String (whose Lead is its first rune as a one-rune String).
type Sequence interface {
	Value
	Lead() Value
	Last() Value
	PlaceLead(v Value) Value
	PlaceLast(v Value) Value
	DropLead() Value
	DropLast() Value
	Len() int
}

// Associative is satisfied by variants supporting has/get/set/del:
// Expression, List, and Map.
type Associative interface {
	Value
	Has(key Value) bool
	Get(key Value) Value
	Set(key Value, val Value) Value
	Del(key Value) Value
}

// Clearable is satisfied by variants whose logical contents can be emptied
// in place of being rebuilt element by element (CLEAR_op, spec §4.3).
type Clearable interface {
	Value
	Clear() Value
}

// Equal derives structural equality from Compare when available, and
// otherwise from Kind plus String identity.
func Equal(a, b Value) bool {
	if ac, ok := a.(Comparable); ok {
		return ac.Compare(b) == 0
	}
	return a.Kind() == b.Kind() && a.String() == b.String()
}

// IsNaNCompare reports whether a Compare result denotes "not comparable".
func IsNaNCompare(f float64) bool {
	return math.IsNaN(f)
}

// NaN is the sentinel "not comparable" result for Compare implementations.
func NaN() float64 {
	return math.NaN()
}
