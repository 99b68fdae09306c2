package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// associativeOperators implements HAS/GET/SET/DEL (spec §4.3, grounded on
// Oliver_Lang/.../associative_operators.h) plus the MAPJSON/JSONMAP
// interop pair added by spec §5.9.
func (m *Machine) associativeOperators(opr opcode.OpCode) {
	switch opr {
	case opcode.HAS:
		y := m.popStack()
		x := m.popStack()
		if a, ok := x.(value.Associative); ok {
			m.pushStack(value.NewBoolean(a.Has(y)))
			return
		}
		m.pushStack(value.False)

	case opcode.GET:
		y := m.popStack()
		x := m.popStack()
		if a, ok := x.(value.Associative); ok {
			m.pushStack(a.Get(y))
			return
		}
		m.pushStack(value.Nil)

	case opcode.SET:
		z := m.popStack()
		y := m.popStack()
		x := m.popStack()
		for {
			sym, ok := x.(value.Symbol)
			if !ok {
				break
			}
			x = m.lookup(sym)
		}
		if a, ok := x.(value.Associative); ok {
			m.pushStack(a.Set(y, z))
			return
		}
		m.pushStack(value.NewError("Invalid set target."))

	case opcode.DEL:
		y := m.popStack()
		x := m.popStack()
		if a, ok := x.(value.Associative); ok {
			m.pushStack(a.Del(y))
			return
		}
		m.pushStack(x)

	case opcode.MAPJSON:
		x := m.popStack()
		m.pushStack(mapToJSON(x))

	case opcode.JSONMAP:
		x := m.popStack()
		m.pushStack(jsonToValue(x))
	}
}
