// Package eval is Oliver's stack evaluator (spec §2, §4): a three-stack
// virtual machine (value stack, return stack, code stack) that walks the
// compiler's Expression tree and dispatches opcodes by band, grounded on
// Oliver_Lang/Components/Evaluator/evaluator.h. Unlike the teacher's
// internal/bytecode package (a flat instruction array consumed by an
// instruction pointer), Oliver's "bytecode" is the Expression tree itself —
// the code stack holds nested Expression frames rather than a single
// linear program, the way spec §9's "three-stack architecture" note
// describes.
package eval

import (
	"fmt"

	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// DefaultStackLimit matches evaluator.h's DEFAULT_STACK_LIMIT.
const DefaultStackLimit = 2048

// Machine is a single, non-reentrant evaluation session. It is not safe for
// concurrent use, mirroring evaluator's single-threaded design.
type Machine struct {
	scopes    []map[string]value.Value
	stack     []value.Value
	retur     []value.Value
	code      [][]value.Value
	stackMax  int
	out       func(string)
	roundMode value.RoundingMode
	decScale  int
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithStackLimit overrides DefaultStackLimit (config's stack_limit, spec §4.3).
func WithStackLimit(n int) Option {
	return func(m *Machine) { m.stackMax = n }
}

// WithOutput redirects EMIT/ENDL output, default os.Stdout via fmt.Print.
func WithOutput(fn func(string)) Option {
	return func(m *Machine) { m.out = fn }
}

// WithNumberFormat records a decimal scale/rounding mode on the Machine
// (spec §6). No opcode reads them: EMIT and the printed result stack render
// Numbers with Number.String, which does not apply this scale or mode.
func WithNumberFormat(scale int, mode value.RoundingMode) Option {
	return func(m *Machine) { m.decScale, m.roundMode = scale, mode }
}

// New constructs a Machine ready to Run a compiled Expression.
func New(opts ...Option) *Machine {
	m := &Machine{stackMax: DefaultStackLimit}
	for _, o := range opts {
		o(m)
	}
	if m.out == nil {
		m.out = func(s string) { fmt.Print(s) }
	}
	return m
}

// Run evaluates exp (the compiler's output) and returns the result stack as
// an Expression, mirroring evaluator::eval's public entry point.
func (m *Machine) Run(exp value.Value) value.Value {
	e, ok := exp.(value.Expression)
	if !ok {
		return value.Nil
	}

	m.code = append(m.code, e.Elements())
	m.pushScope(map[string]value.Value{})

	m.loop()

	return m.resultStack()
}

func (m *Machine) pushScope(vars map[string]value.Value) {
	m.scopes = append(m.scopes, vars)
}

func (m *Machine) popScope() {
	if len(m.scopes) > 0 {
		m.scopes = m.scopes[:len(m.scopes)-1]
	}
}

func (m *Machine) loop() {
	for len(m.code) > 0 {
		exp := m.nextFromCode()

		for {
			if sym, ok := exp.(value.Symbol); ok {
				exp = m.lookup(sym)
				continue
			}
			break
		}

		switch v := exp.(type) {
		case value.Expression:
			els := v.Elements()
			if len(els) > 0 {
				m.code = append(m.code, els)
			}

		case value.Lambda:
			m.invokeLambda(v)

		case value.OpCall:
			m.dispatch(v.Code)

		default:
			if exp != nil && exp.Kind() != value.KindNothing {
				m.pushStack(exp)
			}
		}
	}
}

// nextFromCode pops the lead element of the top code frame, matching
// evaluator::get_expression_from_code, popping the exhausted frame too.
func (m *Machine) nextFromCode() value.Value {
	n := len(m.code) - 1
	if n < 0 {
		return value.NewError(value.ErrCodeUnderflow)
	}
	frame := m.code[n]
	if len(frame) == 0 {
		m.code = m.code[:n]
		return m.nextFromCode()
	}
	head := frame[0]
	frame = frame[1:]
	if len(frame) == 0 {
		m.code = m.code[:n]
	} else {
		m.code[n] = frame
	}
	return head
}

// nextArgFromCode fetches a lambda invocation's next argument the way
// nextFromCode does, except a pending ENDSCOPE sentinel is skipped rather
// than bound as the argument: it belongs to an enclosing call whose own
// scope must not close until this (nested) call's body has run. Each
// skipped sentinel is set aside and, once the real argument turns up
// further out, pushed back as its own frame so it still fires — right
// after the frame about to be pushed for this call, and before whatever
// continuation sat beyond it — preserving the original unwind order for
// however many enclosing scopes were skipped (evaluator.h has no
// equivalent of this; multi-level currying across frames is this port's
// own resolution of the two-call argument lookahead).
func (m *Machine) nextArgFromCode() value.Value {
	var deferred []value.Value
	for {
		v := m.nextFromCode()
		oc, ok := v.(value.OpCall)
		if !ok || oc.Code != opcode.ENDSCOPE {
			for i := len(deferred) - 1; i >= 0; i-- {
				m.pushNewCodeFrame([]value.Value{deferred[i]})
			}
			return v
		}
		deferred = append(deferred, v)
	}
}

func (m *Machine) pushCode(v value.Value) {
	n := len(m.code) - 1
	if n < 0 {
		m.code = append(m.code, nil)
		n = 0
	}
	m.code[n] = prependValue(m.code[n], v)
}

func (m *Machine) pushNewCodeFrame(vs []value.Value) {
	m.code = append(m.code, vs)
}

func prependValue(s []value.Value, v value.Value) []value.Value {
	out := make([]value.Value, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}

func (m *Machine) pushStack(v value.Value) {
	if len(m.stack) >= m.stackMax {
		m.stack = append(m.stack, value.NewError(value.ErrStackOverflow))
		return
	}
	m.stack = append(m.stack, v)
}

func (m *Machine) popStack() value.Value {
	n := len(m.stack) - 1
	if n < 0 {
		return value.NewError(value.ErrStackUnderflow)
	}
	v := m.stack[n]
	m.stack = m.stack[:n]
	return v
}

func (m *Machine) pushReturn(v value.Value) {
	if len(m.retur) >= m.stackMax {
		m.retur = append(m.retur, value.NewError(value.ErrReturnOverflow))
		return
	}
	m.retur = append(m.retur, v)
}

func (m *Machine) popReturn() value.Value {
	n := len(m.retur) - 1
	if n < 0 {
		return value.NewError(value.ErrReturnUnderflow)
	}
	v := m.retur[n]
	m.retur = m.retur[:n]
	return v
}

// resultStack renders the value stack into an Expression in stack order
// (evaluator::get_result_stack).
func (m *Machine) resultStack() value.Value {
	items := make([]value.Value, len(m.stack))
	for i, v := range m.stack {
		items[len(m.stack)-1-i] = v
	}
	return value.NewExpression(items...)
}

// resultQueue renders a snapshot of the current top code frame into an
// Expression, leaving the code stack as it was, and resolves symbols as it
// goes when resolve is set (evaluator::get_eval_queue/get_result_queue
// reconciled: QUEUE uses the raw queue, RESULT the resolved one).
func (m *Machine) resultQueue(resolve bool) value.Value {
	if len(m.code) == 0 {
		return value.NewExpression()
	}
	frame := m.code[len(m.code)-1]

	items := make([]value.Value, 0, len(frame))
	for _, v := range frame {
		if resolve {
			for {
				sym, ok := v.(value.Symbol)
				if !ok {
					break
				}
				v = m.lookup(sym)
			}
		}
		items = append(items, v)
	}
	return value.NewExpression(items...)
}

func (m *Machine) lookup(sym value.Symbol) value.Value {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if v, ok := m.scopes[i][sym.Name]; ok {
			return v
		}
	}
	return value.NewError(value.ErrUndefVar)
}

func (m *Machine) define(name string, val value.Value) {
	for {
		sym, ok := val.(value.Symbol)
		if !ok {
			break
		}
		val = m.lookup(sym)
	}
	if len(m.scopes) == 0 {
		m.pushScope(map[string]value.Value{})
	}
	m.scopes[len(m.scopes)-1][name] = val
}

func symbolName(v value.Value) (string, bool) {
	sym, ok := v.(value.Symbol)
	if !ok {
		return "", false
	}
	return sym.Name, true
}

// invokeLambda opens a new enclosure scope bound to the lambda's captured
// scope, binds each argument symbol to a value pulled from the code stack,
// then runs the body followed by an end-scope sentinel
// (evaluator::eval's "exp.type() == lambda" branch). The body and its
// ENDSCOPE sentinel are pushed together as one dedicated frame rather than
// spliced onto whatever frame is currently on top, so a caller's own
// pending continuation (e.g. the argument a curried result is about to be
// applied to) is never interleaved with this call's sentinel.
func (m *Machine) invokeLambda(lam value.Lambda) {
	scope := map[string]value.Value{}
	for k, v := range lam.Scope {
		scope[k] = v
	}
	m.pushScope(scope)
	m.pushReturn(value.NewOpCall(opcode.ENDSCOPE))

	args, _ := lam.Args.(value.Expression)
	for _, a := range args.Elements() {
		val := m.nextArgFromCode()
		if name, ok := symbolName(a); ok {
			m.define(name, val)
		}
	}

	var frame []value.Value
	if body, ok := lam.Body.(value.Expression); ok {
		frame = append(frame, body.Elements()...)
	} else {
		frame = append(frame, lam.Body)
	}
	frame = append(frame, value.NewOpCall(opcode.ENDSCOPE))
	m.pushNewCodeFrame(frame)
}

func (m *Machine) endScope() {
	m.popScope()

	d := m.popReturn()
	for len(m.retur) > 0 {
		if oc, ok := d.(value.OpCall); ok && oc.Code == opcode.ENDSCOPE {
			break
		}
		m.pushStack(d)
		d = m.popReturn()
	}
}

// dispatch classifies opr by band and routes it to the matching operator
// family file (evaluator::eval's chained band comparisons).
func (m *Machine) dispatch(opr opcode.OpCode) {
	switch opr.Classify() {
	case opcode.BandFundamental:
		m.fundamentalOperators(opr)
	case opcode.BandSequential:
		m.sequenceOperators(opr)
	case opcode.BandAssociative:
		m.associativeOperators(opr)
	case opcode.BandUnary:
		m.unaryOperators(opr)
	case opcode.BandBinary:
		m.binaryOperators(opr)
	case opcode.BandFunction:
		m.functionOperators(opr)
	}
}
