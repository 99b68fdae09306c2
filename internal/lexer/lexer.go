// Package lexer turns Oliver source text into a flat vector of string
// tokens (spec §2), grounded on Oliver_Lang/Components/text_parser.h. It
// performs no classification beyond splitting — deciding what a token means
// is the compiler's job (spec §2 "the lexer never classifies a token as an
// operator or literal; it only recognizes the handful of characters that
// change how splitting proceeds").
package lexer

import (
	"strings"
	"unicode"

	"github.com/maxjmartin/Olly/internal/source"
)

// Lex tokenizes text and returns its token vector, wrapped in a leading "("
// and trailing ")" the way text_parser::parse() always does so the compiler
// can treat the whole program as one top-level expression.
func Lex(text string) []string {
	l := &lexer{input: source.New(text)}
	return l.run()
}

type lexer struct {
	input  *source.Reader
	tokens []string
	skip   bool // inside a "##...##" comment block
	c      rune
}

func (l *lexer) run() []string {
	if !l.input.Is() {
		return l.tokens
	}

	l.skipLeadingWhitespace()

	word := "("
	l.process(&word)

	for l.input.Is() {
		l.c = l.input.Next()

		switch {
		case !l.skip:
			l.step(&word)
		case l.c == '#':
			l.handleComment(&word)
		}
	}

	l.process(&word)
	word = ")"
	l.process(&word)

	return l.tokens
}

// step handles one character while outside a comment block (text_parser's
// main dispatch chain inside parse()).
func (l *lexer) step(word *string) {
	switch {
	case isWhitespace(l.c) || l.c == ',':
		l.process(word)

	case l.c == '#':
		l.handleComment(word)

	case *word == "" && l.c == '-':
		l.handleNegation(word)

	case *word == "" && l.c == '+':
		l.handleAddition(word)

	case l.c == '@':
		l.process(word)
		*word = "@"
		l.process(word)

	case l.c == '\'':
		l.process(word)
		l.tokens = append(l.tokens, "'", l.readUntil('\''), "'")

	case l.c == '"':
		l.process(word)
		l.tokens = append(l.tokens, "\"", l.readString(), "\"")

	case l.c == '\\':
		l.process(word)
		l.tokens = append(l.tokens, "\\", l.readRegex(), "\\")

	case l.c == '`':
		l.process(word)
		l.tokens = append(l.tokens, "`", l.readFormat(), "`")

	case l.c == '(' || l.c == ')':
		l.process(word)
		l.tokens = append(l.tokens, string(l.c))

	case l.c == ':' || l.c == ';':
		l.process(word)
		if l.c == ':' && l.input.Peek() == ':' {
			l.input.Next()
			l.tokens = append(l.tokens, "::")
		} else if l.c == ':' {
			l.tokens = append(l.tokens, "(")
		} else {
			l.tokens = append(l.tokens, ")")
		}

	case l.c == '[' || l.c == ']':
		l.process(word)
		l.tokens = append(l.tokens, string(l.c))

	case l.c == '{' || l.c == '}':
		l.process(word)
		l.tokens = append(l.tokens, string(l.c))

	default:
		*word += string(l.c)
	}
}

func (l *lexer) process(word *string) {
	if *word != "" {
		l.tokens = append(l.tokens, *word)
		*word = ""
	}
}

func (l *lexer) skipLeadingWhitespace() {
	for l.input.Is() && isWhitespace(l.input.Peek()) {
		l.input.Next()
	}
}

// handleComment recognizes `#` line comments and `##...##` block comments
// (text_parser::handle_comment_operator).
func (l *lexer) handleComment(word *string) {
	l.process(word)

	if l.input.Peek() == '#' {
		l.skip = !l.skip
		for l.input.Peek() == '#' && l.input.Is() {
			l.input.Next()
		}
		return
	}

	for l.input.Is() {
		if l.input.Next() == '\n' {
			break
		}
	}
}

// handleNegation disambiguates "-", "neg", "-=", and the sequence shorthand
// "-->"/"--<" (text_parser::handle_unary_negation_operator).
func (l *lexer) handleNegation(word *string) {
	switch {
	case l.input.Peek() == '=':
		l.input.Next()
		l.tokens = append(l.tokens, "-=")

	case l.input.Peek() == '-':
		l.input.Next()
		if l.input.Peek() == '>' || l.input.Peek() == '<' {
			l.tokens = append(l.tokens, "--"+string(l.input.Next()))
		} else {
			l.tokens = append(l.tokens, "neg", "neg")
		}

	case l.input.Peek() != ' ':
		l.tokens = append(l.tokens, "neg")

	default:
		l.tokens = append(l.tokens, "-")
	}
	*word = ""
}

// handleAddition disambiguates "+" from the prefix "pos" form
// (text_parser::handle_unary_addition_operator).
func (l *lexer) handleAddition(word *string) {
	if l.input.Peek() != ' ' {
		l.tokens = append(l.tokens, "pos")
	} else {
		l.tokens = append(l.tokens, "+")
	}
	*word = ""
}

// readString reads a double-quoted literal's body, honoring the backslash
// escapes text_parser::read_string recognizes.
func (l *lexer) readString() string {
	var sb strings.Builder
	escaped := false

	for l.input.Is() {
		c := l.input.Next()

		switch {
		case escaped:
			sb.WriteRune(unescape(c))
			escaped = false
		case c == '\\' && isStringEscapeChar(l.input.Peek()):
			escaped = true
		case c == '"':
			return sb.String()
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// readRegex reads a backslash-delimited regex literal's body
// (text_parser::read_regex). It honors the same escape-char set as
// readString, but unlike readString only `\\` itself translates — any
// other escaped character is kept literally, since a regex body wants
// `\n` to stay as backslash-n for the regex engine, not become a newline.
// A lone backslash whose next character isn't a recognized escape char
// closes the literal.
func (l *lexer) readRegex() string {
	var sb strings.Builder
	escaped := false

	for l.input.Is() {
		c := l.input.Next()

		switch {
		case escaped:
			if c == '\\' {
				sb.WriteRune('\\')
			} else {
				sb.WriteRune('\\')
				sb.WriteRune(c)
			}
			escaped = false
		case c == '\\' && isStringEscapeChar(l.input.Peek()):
			escaped = true
		case c == '\\':
			return sb.String()
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// readFormat reads a backtick-delimited I/O format literal's body
// verbatim, with no escape processing (text_parser::read_format).
func (l *lexer) readFormat() string {
	return l.readUntil('`')
}

// readUntil consumes characters up to and including stop, returning
// everything before it (text_parser::read_number).
func (l *lexer) readUntil(stop rune) string {
	var sb strings.Builder
	for l.input.Is() {
		c := l.input.Next()
		if c == stop {
			break
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func isStringEscapeChar(c rune) bool {
	switch c {
	case '\'', '"', '\\', 'a', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	}
	return false
}

func unescape(c rune) rune {
	switch c {
	case '\\':
		return '\\'
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	default:
		return c
	}
}

func isWhitespace(c rune) bool {
	return c < 32 || unicode.IsSpace(c)
}
