package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// fundamentalOperators implements the LET/IDNT/STACK/QUEUE/CLEAR/EMIT/
// ENDL/RETURN opcodes, grounded on
// Oliver_Lang/.../fundamental_operators.h, reconciled with the `let`
// assignment dispatch (EQ/BIND/APPLY) also described there and detailed
// further in function_operators.h for the BIND case (spec §5.3).
func (m *Machine) fundamentalOperators(opr opcode.OpCode) {
	switch opr {
	case opcode.IDNT:
		// Quote: take the next code item literally, unevaluated (spec §5.2).
		m.pushStack(m.nextFromCode())

	case opcode.LET:
		val := m.popStack()
		v := m.popStack()
		if name, ok := symbolName(v); ok {
			m.define(name, val)
		}

	case opcode.STACK:
		m.pushStack(m.resultStack())

	case opcode.QUEUE:
		m.pushStack(m.resultQueue(false))

	case opcode.CLEAR:
		m.clear()

	case opcode.EMIT:
		m.out(m.popStack().String())

	case opcode.ENDL:
		m.out("\n")

	case opcode.LETOP:
		m.letOp()

	case opcode.DEFOP:
		m.defOp()

	case opcode.BIND:
		m.bindOp()

	case opcode.RETURN:
		m.returnOp()
	}
}

// clear reads one more code token to decide what to clear (spec §5.1):
// the whole value stack, the whole code stack, or a single value's
// contents via its Clearable implementation.
func (m *Machine) clear() {
	next := m.nextFromCode()

	if oc, ok := next.(value.OpCall); ok {
		switch oc.Code {
		case opcode.STACK:
			m.stack = nil
			return
		case opcode.QUEUE:
			m.code = nil
			return
		}
	}

	for {
		sym, ok := next.(value.Symbol)
		if !ok {
			break
		}
		next = m.lookup(sym)
	}

	if c, ok := next.(value.Clearable); ok {
		m.pushCode(c.Clear())
		return
	}
	m.pushCode(next)
}

// letOp implements the `let` combinator: it pulls vars/vals/oper straight
// off the code stack (they are the compiled tail of the `let` expression,
// not yet evaluated) and dispatches on oper's opcode.
func (m *Machine) letOp() {
	vars := m.nextFromCode()
	vals := m.nextFromCode()
	oper := m.nextFromCode()

	oc, ok := oper.(value.OpCall)
	if !ok {
		return
	}

	switch oc.Code {
	case opcode.EQ:
		m.assignPairs(vars, vals)
	case opcode.BIND:
		m.bindPairs(vars, vals)
	case opcode.APPLY:
		// Defer to the function-band APPLY opcode: run vals (the call),
		// then assign its result to vars (spec §5.4).
		m.pushCode(vars)
		m.pushCode(value.NewOpCall(opcode.APPLY))
		m.pushCode(vals)
	}
}

// assignPairs implements simple `var = val` assignment, including the
// parallel multi-assignment form (spec.md §4.3's LET). A Lambda value is
// bound as-is without evaluation — recursion is wired up by defOp, not here.
func (m *Machine) assignPairs(vars, vals value.Value) {
	varList := asExpressionElements(vars)
	valList := asExpressionElements(vals)

	for i, v := range varList {
		if i >= len(valList) {
			break
		}
		val := valList[i]
		for {
			sym, ok := val.(value.Symbol)
			if !ok {
				break
			}
			val = m.lookup(sym)
		}
		if name, ok := symbolName(v); ok {
			m.define(name, val)
		}
	}
}

// bindOp implements the postfix BIND opcode when `==` appears outside a
// `let` (e.g. `lam == arg val`, spec §5.3): pop the (arg value ...) run and
// the lambda straight off the value stack and push the partially-applied
// copy, rather than defining a name the way bindPairs does for `let`.
func (m *Machine) bindOp() {
	y := m.popStack()
	x := m.popStack()

	for {
		sym, ok := x.(value.Symbol)
		if !ok {
			break
		}
		x = m.lookup(sym)
	}

	lam, ok := x.(value.Lambda)
	if !ok {
		m.pushStack(value.NewError("Invalid bind target."))
		return
	}

	pairs := asExpressionElements(y)
	for i := 0; i+1 < len(pairs); i += 2 {
		argName, ok := symbolName(pairs[i])
		if !ok {
			continue
		}
		val := pairs[i+1]
		for {
			sym, ok := val.(value.Symbol)
			if !ok {
				break
			}
			val = m.lookup(sym)
		}
		lam = lam.BindVariable(value.NewSymbol(argName), val)
	}

	m.pushStack(lam)
}

// bindPairs implements `name == arg value arg value ...` partial
// application (spec §5.3): vars names a Lambda-valued symbol, vals is a
// flat run of (arg, value) pairs to pre-bind into a copy of that Lambda's
// captured scope.
func (m *Machine) bindPairs(vars, vals value.Value) {
	name, ok := symbolName(vars)
	if !ok {
		return
	}

	lam, ok := m.lookup(value.NewSymbol(name)).(value.Lambda)
	if !ok {
		return
	}

	pairs := asExpressionElements(vals)
	for i := 0; i+1 < len(pairs); i += 2 {
		argName, ok := symbolName(pairs[i])
		if !ok {
			continue
		}
		val := pairs[i+1]
		for {
			sym, ok := val.(value.Symbol)
			if !ok {
				break
			}
			val = m.lookup(sym)
		}
		lam = lam.BindVariable(value.NewSymbol(argName), val)
	}

	m.define(name, lam)
}

// defOp builds a Lambda from the compiled `def var args body` form, closes
// over the current scope, wires up the self-reference (spec §5.8), and
// binds it under var in the current scope.
func (m *Machine) defOp() {
	v := m.nextFromCode()
	args := m.nextFromCode()
	body := m.nextFromCode()

	lam := value.NewLambda(args, body)

	if len(m.scopes) > 0 {
		lam = lam.BindScope(m.scopes[len(m.scopes)-1])
	}

	name, ok := symbolName(v)
	if ok {
		lam = lam.BindVariable(v, lam)
		lam = lam.BindVariable(value.NewString("self"), value.NewSymbol(name))
		m.define(name, lam)
	}
}

// returnOp implements early return (spec §5.5): evaluate the remaining
// expression eagerly, resolving symbols, push the result, then unwind the
// code stack to the nearest end-scope sentinel.
func (m *Machine) returnOp() {
	exp := m.nextFromCode()

	els := asExpressionElements(exp)
	resolved := make([]value.Value, len(els))
	for i, e := range els {
		for {
			sym, ok := e.(value.Symbol)
			if !ok {
				break
			}
			e = m.lookup(sym)
		}
		resolved[i] = e
	}
	m.pushStack(value.NewExpression(resolved...))

	for len(m.code) > 0 {
		next := m.nextFromCode()
		if oc, ok := next.(value.OpCall); ok && oc.Code == opcode.ENDSCOPE {
			m.pushCode(next)
			break
		}
	}
}

func asExpressionElements(v value.Value) []value.Value {
	if e, ok := v.(value.Expression); ok {
		return e.Elements()
	}
	return []value.Value{v}
}
