package value

import "testing"

func TestLambdaBindVariable(t *testing.T) {
	lam := NewLambda(NewExpression(NewSymbol("x")), NewExpression(NewSymbol("x")))
	bound := lam.BindVariable(NewSymbol("x"), NewInt(5))
	if got := bound.Scope["x"].String(); got != "5" {
		t.Fatalf("Scope[x] = %s, want 5", got)
	}
	// BindVariable must not mutate the receiver's scope map.
	if _, ok := lam.Scope["x"]; ok {
		t.Fatalf("original lambda's scope was mutated by BindVariable")
	}
}

func TestLambdaBindScopeExcludesSelf(t *testing.T) {
	lam := NewLambda(NewExpression(NewSymbol("y")), NewExpression(NewSymbol("y")))
	enclosing := map[string]Value{
		"self": NewSymbol("f"),
		"f":    lam,
		"n":    NewInt(3),
	}
	bound := lam.BindScope(enclosing)
	if _, ok := bound.Scope["f"]; ok {
		t.Fatalf("BindScope should exclude the binding named by \"self\"")
	}
	if got := bound.Scope["n"].String(); got != "3" {
		t.Fatalf("Scope[n] = %s, want 3", got)
	}
}

func TestLambdaIsFalseWhenArgsAndBodyEmpty(t *testing.T) {
	lam := NewLambda(NewExpression(), NewExpression())
	if lam.Is() {
		t.Fatalf("lambda with empty args and body should be falsy")
	}
}

func TestLambdaCompareByArgsAndBody(t *testing.T) {
	a := NewLambda(NewExpression(NewSymbol("x")), NewExpression(NewSymbol("x")))
	b := NewLambda(NewExpression(NewSymbol("x")), NewExpression(NewSymbol("x")))
	c := NewLambda(NewExpression(NewSymbol("y")), NewExpression(NewSymbol("x")))
	if a.Compare(b) != 0 {
		t.Fatalf("lambdas with identical args/body should compare 0")
	}
	if !IsNaNCompare(a.Compare(c)) {
		t.Fatalf("lambdas with differing args should be not-comparable")
	}
}
