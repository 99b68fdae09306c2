// Package compiler rewrites Oliver's lexed token vector into a single
// postfix Expression tree (spec §2), grounded on
// Oliver_Lang/Components/Compiler/compiler.h. The original walks each
// bracketed frame back-to-front twice (once to collect its terms, once to
// rebuild them) so that infix and prefix operators can be rewritten to
// postfix without a precedence table; this port keeps that structure but
// expresses the two prepend-built stacks as plain slices instead of the
// teacher's persistent `let` sequence.
package compiler

import (
	"strings"

	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// Compile rewrites tokens (as produced by lexer.Lex) into the Expression
// the evaluator runs.
func Compile(tokens []string) value.Value {
	c := &compiler{tokens: tokens, frames: [][]value.Value{{}}}
	c.run()

	root := c.frames[0]
	if len(root) == 0 {
		return value.NewExpression()
	}
	return root[0]
}

type compiler struct {
	tokens []string
	frames [][]value.Value
}

func (c *compiler) push() { c.frames = append(c.frames, nil) }

func (c *compiler) pop() []value.Value {
	n := len(c.frames) - 1
	f := c.frames[n]
	c.frames = c.frames[:n]
	return f
}

// place prepends t onto the current frame, mirroring compiler.h's
// place_term/place_lead so the later reverse-walk in closeFrame produces
// terms in the original encounter order.
func (c *compiler) place(t value.Value) {
	top := len(c.frames) - 1
	c.frames[top] = prepend(c.frames[top], t)
}

func prepend(s []value.Value, v value.Value) []value.Value {
	out := make([]value.Value, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}

func popFront(s *[]value.Value) value.Value {
	if len(*s) == 0 {
		return value.Nil
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v
}

func (c *compiler) run() {
	i := 0
	for i < len(c.tokens) {
		tok := c.tokens[i]

		switch {
		case tok == "(" || tok == "[":
			c.push()

		case tok == "{":
			c.push()
			c.place(value.NewOpCall(opcode.MAPOP))

		case tok == "'":
			i++
			content := c.collectUntil(&i, "'")
			c.place(value.ParseNumber(content))

		case tok == "\"":
			i++
			content := c.collectUntil(&i, "\"")
			c.place(value.NewString(content))

		case tok == "`":
			// I/O format literal: spec treats it as a String subtype, since
			// it carries no evaluator semantics of its own (spec §9).
			i++
			content := c.collectUntil(&i, "`")
			c.place(value.NewString(content))

		case tok == "\\":
			// Regex literal: reserved, with no dedicated evaluator opcode
			// of its own either, so it is represented the same way as the
			// format literal above — a String carrying its escaped body.
			i++
			content := c.collectUntil(&i, "\\")
			c.place(value.NewString(content))

		case tok == ")" || tok == "]" || tok == "}":
			c.closeFrame(tok)

		case tok != "":
			c.placeToken(tok)
		}

		i++
	}
}

// collectUntil gathers tokens up to (not including) the next occurrence of
// stop, advancing i to land on the stop token (compiler.h's collect_string).
func (c *compiler) collectUntil(i *int, stop string) string {
	var sb strings.Builder
	for *i < len(c.tokens) && c.tokens[*i] != stop {
		sb.WriteString(c.tokens[*i])
		*i++
	}
	return sb.String()
}

// placeToken drops a NOTHING/NONE identifier, otherwise resolves a bare word
// against the canonical keyword table, falling back to a Boolean literal or
// a Symbol (compiler.h's lower-then-upper OPERATORS lookup).
func (c *compiler) placeToken(tok string) {
	upper := strings.ToUpper(tok)

	if opcode.DroppedIdentifiers[upper] {
		return
	}

	if oc, ok := opcode.Keywords[strings.ToLower(tok)]; ok {
		c.place(value.NewOpCall(oc))
		return
	}

	if oc, ok := opcode.Keywords[upper]; ok {
		c.place(value.NewOpCall(oc))
		return
	}

	if opcode.BooleanLiterals[upper] {
		c.place(value.ParseBoolean(upper))
		return
	}

	c.place(value.NewSymbol(tok))
}

// closeFrame pops the frame tok closed, rewrites its prefix/infix operators
// to postfix, and places the assembled Expression/List/Map back onto the
// enclosing frame (compiler.h's `)`/`]`/`}` branch).
func (c *compiler) closeFrame(tok string) {
	terms := c.pop()

	var exp []value.Value

	for len(terms) > 0 {
		term := popFront(&terms)

		oc, isOpCall := term.(value.OpCall)

		switch {
		case isOpCall && oc.Code == opcode.FUNCTIONOP:
			args := popFront(&exp)
			body := popFront(&exp)
			exp = prepend(exp, value.NewLambda(args, body))

		case isOpCall && oc.Code.IsPrefixUnary():
			a := popFront(&exp)
			post := value.NewOpCall(oc.Code.Postfix())

			p := prepend(prepend(nil, post), a)
			exp = prepend(exp, value.NewExpression(p...))

		case isOpCall && oc.Code.IsInfixBinary():
			a := popFront(&exp)
			post := value.NewOpCall(oc.Code.Infix())

			exp = prepend(exp, post)
			exp = prepend(exp, a)

		default:
			exp = prepend(exp, term)
		}
	}

	if len(exp) > 0 {
		if oc, ok := exp[0].(value.OpCall); ok && oc.Code == opcode.MAPOP {
			c.place(buildMap(exp[1:]))
			return
		}
	}

	if tok == "]" {
		c.place(value.NewList(exp...))
		return
	}
	c.place(value.NewExpression(exp...))
}

// buildMap interprets a map frame's rewritten body as a flat run of (key,
// value, EQ-marker) triples — the shape `{ key = value, ... }` compiles to
// once "=" has been rewritten to postfix EQ inside the same pass above — and
// constructs the Map directly rather than by evaluating EQ as a comparison.
func buildMap(args []value.Value) value.Value {
	m := value.NewMap()
	for i := 0; i+1 < len(args); i += 3 {
		key := args[i]
		val := args[i+1]
		m = m.Set(key, val).(value.Map)
	}
	return m
}
