package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// unaryOperators implements NEGOP/POSOP/IS, grounded on
// Oliver/interpreter/evaluator/unary_operators.h.
func (m *Machine) unaryOperators(opr opcode.OpCode) {
	x := m.popStack()

	switch opr {
	case opcode.NEGOP:
		m.pushStack(negate(x))

	case opcode.POSOP:
		m.pushStack(x)

	case opcode.IS:
		m.pushStack(value.NewBoolean(x.Is()))

	default:
		m.pushStack(x)
	}
}

func negate(x value.Value) value.Value {
	if n, ok := x.(value.Number); ok {
		return n.Neg()
	}
	if b, ok := x.(value.Boolean); ok {
		return b.Xor(value.True)
	}
	return value.NewError("Invalid negation.")
}
