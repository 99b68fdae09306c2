package lexer

import (
	"reflect"
	"testing"
)

func TestLexWrapsWithImplicitBrackets(t *testing.T) {
	got := Lex("x")
	want := []string{"(", "x", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lex(%q) = %q, want %q", "x", got, want)
	}
}

func TestLexNumberLiteral(t *testing.T) {
	got := Lex("'42'")
	want := []string{"(", "'", "42", "'", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexStringLiteralEscapes(t *testing.T) {
	got := Lex(`"a\nb"`)
	want := []string{"(", "\"", "a\nb", "\"", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexFormatLiteral(t *testing.T) {
	got := Lex("`%d days`")
	want := []string{"(", "`", "%d days", "`", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexRegexLiteral(t *testing.T) {
	got := Lex(`\abc\`)
	want := []string{"(", "\\", "abc", "\\", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestLexRegexLiteralEscapedBackslash verifies that only a backslash
// followed by a recognized escape char continues the literal (text_parser
// ::read_regex calls is_string_escape_char, not a regex-specific set) — an
// escaped backslash stays in the body rather than closing the literal.
func TestLexRegexLiteralEscapedBackslash(t *testing.T) {
	got := Lex(`\a\\b\`)
	want := []string{"(", "\\", "a\\b", "\\", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexBracketsAndBraces(t *testing.T) {
	got := Lex("[x]")
	want := []string{"(", "[", "x", "]", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexSemicolonAndColonShorthand(t *testing.T) {
	got := Lex(": x ;")
	want := []string{"(", "(", "x", ")", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexDoubleColonIsNotShorthand(t *testing.T) {
	got := Lex("a::b")
	want := []string{"(", "a", "::", "b", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexUnaryNegationVsSubtraction(t *testing.T) {
	got := Lex("-x")
	want := []string{"(", "neg", "x", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Lex("a - b")
	want = []string{"(", "a", "-", "b", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexSequenceShorthand(t *testing.T) {
	got := Lex("x --> y")
	want := []string{"(", "x", "-->", "y", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexLineComment(t *testing.T) {
	got := Lex("x # trailing comment\ny")
	want := []string{"(", "x", "y", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexBlockComment(t *testing.T) {
	got := Lex("x ## dropped ## y")
	want := []string{"(", "x", "y", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
