package eval

import (
	"testing"

	"github.com/maxjmartin/Olly/internal/compiler"
	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/maxjmartin/Olly/internal/value"
)

func run(src string) value.Expression {
	exp := compiler.Compile(lexer.Lex(src))
	m := New()
	result, _ := m.Run(exp).(value.Expression)
	return result
}

// TestArithmeticNoPrecedence verifies Oliver's left-to-right infix rewrite:
// '2' + '3' * '4' runs as (2 + 3) * 4 = 20, not 2 + (3 * 4) = 14, since
// there is no operator precedence (spec §4.1).
func TestArithmeticNoPrecedence(t *testing.T) {
	result := run("'2' + '3' * '4'")
	els := result.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d result values, want 1: %v", len(els), els)
	}
	n, ok := els[0].(value.Number)
	if !ok {
		t.Fatalf("got %T, want value.Number", els[0])
	}
	if n.String() != "20" {
		t.Fatalf("got %s, want 20", n.String())
	}
}

// TestDefThenCall verifies def_op builds a Lambda closing over the calling
// scope and that juxtaposing it against an argument invokes it directly
// (spec §5.8): def f (x) (x * x) f '4' must leave 16 on the value stack.
func TestDefThenCall(t *testing.T) {
	result := run("def f (x) (x * x) f '4'")
	els := result.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d result values, want 1: %v", len(els), els)
	}
	n, ok := els[0].(value.Number)
	if !ok {
		t.Fatalf("got %T, want value.Number", els[0])
	}
	if n.String() != "16" {
		t.Fatalf("got %s, want 16", n.String())
	}
}

// TestLetBindsListLiteral verifies `let` binds an already-compiled literal
// value (no evaluation required, spec §4.3) into scope, and that naming the
// bound variable afterward resolves and pushes it (the main loop's
// symbol-resolution branch in Machine.loop).
func TestLetBindsListLiteral(t *testing.T) {
	result := run("let xs = ['1' '2' '3'] xs")
	els := result.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d result values, want 1: %v", len(els), els)
	}
	lst, ok := els[0].(value.List)
	if !ok {
		t.Fatalf("got %T, want value.List", els[0])
	}
	if lst.Len() != 3 {
		t.Fatalf("got %d list elements, want 3", lst.Len())
	}
}

// TestClosureCurrying verifies the multi-level closure scenario (spec §8
// scenario 4): adder closes over x, def's inside its body captures that x
// into inc via BindScope, and naming inc bare (rather than quoting it)
// invokes it immediately against the outer call's own trailing argument.
// inc's own argument lookahead has to reach past adder's pending end-scope
// sentinel, nested two call frames deep, to find the real operand (10):
// def adder (x) (def inc (y) (x + y) inc) adder '3' '10' must leave 13.
func TestClosureCurrying(t *testing.T) {
	result := run("def adder (x) (def inc (y) (x + y) inc) adder '3' '10'")
	els := result.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d result values, want 1: %v", len(els), els)
	}
	n, ok := els[0].(value.Number)
	if !ok {
		t.Fatalf("got %T, want value.Number", els[0])
	}
	if n.String() != "13" {
		t.Fatalf("got %s, want 13", n.String())
	}
}

// TestLetBindsMapLiteral mirrors TestLetBindsListLiteral for a map literal.
func TestLetBindsMapLiteral(t *testing.T) {
	result := run("let m = {a = '1', b = '2'} m")
	els := result.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d result values, want 1: %v", len(els), els)
	}
	m, ok := els[0].(value.Map)
	if !ok {
		t.Fatalf("got %T, want value.Map", els[0])
	}
	if !m.Has(value.NewSymbol("a")) || !m.Has(value.NewSymbol("b")) {
		t.Fatalf("map missing expected keys: %s", m.String())
	}
}
