package compiler

import (
	"testing"

	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

func compile(src string) value.Value {
	return Compile(lexer.Lex(src))
}

func TestCompileNumberLiteral(t *testing.T) {
	exp, ok := compile("'42'").(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", compile("'42'"))
	}
	if exp.Len() != 1 {
		t.Fatalf("got %d elements, want 1", exp.Len())
	}
	n, ok := exp.Elements()[0].(value.Number)
	if !ok {
		t.Fatalf("got %T, want value.Number", exp.Elements()[0])
	}
	if n.String() != "42" {
		t.Fatalf("got %s, want 42", n.String())
	}
}

// TestCompileFormatLiteral verifies a backtick-delimited I/O format
// literal compiles to a plain String, per spec's "treat it as a String
// subtype" directive (it has no evaluator semantics of its own).
func TestCompileFormatLiteral(t *testing.T) {
	exp, ok := compile("`%d days`").(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", compile("`%d days`"))
	}
	s, ok := exp.Elements()[0].(value.String)
	if !ok {
		t.Fatalf("got %T, want value.String", exp.Elements()[0])
	}
	if s.Text != "%d days" {
		t.Fatalf("got %q, want %q", s.Text, "%d days")
	}
}

// TestCompileRegexLiteral verifies a backslash-delimited regex literal
// likewise compiles to a String carrying its escaped body (it has no
// dedicated evaluator opcode either).
func TestCompileRegexLiteral(t *testing.T) {
	exp, ok := compile(`\abc\`).(value.Expression)
	if !ok {
		t.Fatalf("got %T, want value.Expression", compile(`\abc\`))
	}
	s, ok := exp.Elements()[0].(value.String)
	if !ok {
		t.Fatalf("got %T, want value.String", exp.Elements()[0])
	}
	if s.Text != "abc" {
		t.Fatalf("got %q, want %q", s.Text, "abc")
	}
}

func TestCompileListLiteral(t *testing.T) {
	v := compile("['1' '2' '3']").(value.Expression).Elements()[0]
	lst, ok := v.(value.List)
	if !ok {
		t.Fatalf("got %T, want value.List", v)
	}
	if lst.Len() != 3 {
		t.Fatalf("got %d elements, want 3", lst.Len())
	}
}

func TestCompileMapLiteral(t *testing.T) {
	v := compile("{a = '1', b = '2'}").(value.Expression).Elements()[0]
	m, ok := v.(value.Map)
	if !ok {
		t.Fatalf("got %T, want value.Map", v)
	}
	if !m.Has(value.NewSymbol("a")) || !m.Has(value.NewSymbol("b")) {
		t.Fatalf("map missing expected keys: %s", m.String())
	}
}

// TestCompileInfixRewrite verifies "a + b" rewrites to the postfix run
// (a b ADDOP), matching compiler.h's infix-binary branch.
func TestCompileInfixRewrite(t *testing.T) {
	exp := compile("a + b").(value.Expression)
	els := exp.Elements()
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3: %v", len(els), els)
	}
	if _, ok := els[0].(value.Symbol); !ok {
		t.Fatalf("element 0 = %T, want Symbol", els[0])
	}
	if _, ok := els[1].(value.Symbol); !ok {
		t.Fatalf("element 1 = %T, want Symbol", els[1])
	}
	oc, ok := els[2].(value.OpCall)
	if !ok || oc.Code != opcode.ADDOP {
		t.Fatalf("element 2 = %v, want ADDOP", els[2])
	}
}

// TestCompilePrefixUnaryRewrite verifies "neg x" rewrites to a nested
// sub-expression (x NEGOP), matching compiler.h's prefix-unary branch.
func TestCompilePrefixUnaryRewrite(t *testing.T) {
	exp := compile("neg x").(value.Expression)
	els := exp.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1: %v", len(els), els)
	}
	sub, ok := els[0].(value.Expression)
	if !ok {
		t.Fatalf("element 0 = %T, want nested Expression", els[0])
	}
	subEls := sub.Elements()
	if len(subEls) != 2 {
		t.Fatalf("got %d nested elements, want 2: %v", len(subEls), subEls)
	}
	if _, ok := subEls[0].(value.Symbol); !ok {
		t.Fatalf("nested element 0 = %T, want Symbol", subEls[0])
	}
	oc, ok := subEls[1].(value.OpCall)
	if !ok || oc.Code != opcode.NEGOP {
		t.Fatalf("nested element 1 = %v, want NEGOP", subEls[1])
	}
}

// TestCompileFunctionLiteral verifies "function (x) (x)" reifies into a
// single value.Lambda at compile time (compiler.h's function_op branch).
func TestCompileFunctionLiteral(t *testing.T) {
	exp := compile("function (x) (x)").(value.Expression)
	els := exp.Elements()
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1: %v", len(els), els)
	}
	if _, ok := els[0].(value.Lambda); !ok {
		t.Fatalf("element 0 = %T, want value.Lambda", els[0])
	}
}

// TestCompileDefKeptInPlace verifies "def"/its operands are left in their
// original left-to-right order rather than rewritten, since def_op pulls
// its own operands off code at runtime.
func TestCompileDefKeptInPlace(t *testing.T) {
	exp := compile("def f (x) (x)").(value.Expression)
	els := exp.Elements()
	if len(els) != 4 {
		t.Fatalf("got %d elements, want 4: %v", len(els), els)
	}
	oc, ok := els[0].(value.OpCall)
	if !ok || oc.Code != opcode.DEFOP {
		t.Fatalf("element 0 = %v, want DEFOP", els[0])
	}
	if _, ok := els[1].(value.Symbol); !ok {
		t.Fatalf("element 1 = %T, want Symbol", els[1])
	}
}
