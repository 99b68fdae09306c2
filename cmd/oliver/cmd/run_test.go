package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/maxjmartin/Olly/internal/compiler"
	"github.com/maxjmartin/Olly/internal/eval"
	"github.com/maxjmartin/Olly/internal/lexer"
)

// runProgram lexes, compiles and evaluates src against a fresh machine,
// mirroring what the `run` command does end to end.
func runProgram(src string) string {
	tokens := lexer.Lex(src)
	exp := compiler.Compile(tokens)
	m := eval.New()
	return m.Run(exp).String()
}

func TestRunPrograms(t *testing.T) {
	// Oliver has no operator precedence: infix operators rewrite to postfix
	// strictly in left-to-right encounter order, so '2' + '3' * '4' runs as
	// (2 + 3) * 4, not 2 + (3 * 4).
	programs := map[string]string{
		"arithmetic": "'2' + '3' * '4'",
		"function":   "def f (x) (x * x) f '4'",
		"closure":    "def adder (x) (def inc (y) (x + y) inc) adder '3' '10'",
		"list":       "let xs = ['1' '2' '3'] STACK",
		"map":        "let m = {a = '1', b = '2'} STACK",
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, name, runProgram(src))
		})
	}
}
