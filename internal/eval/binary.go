package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// binaryOperators implements AND/OR/XOR, the comparisons, the arithmetic
// family, and INDEX, grounded on
// Oliver/interpreter/evaluator/binary_operators.h. INDEX (`.`, spec §5.6)
// is absent from that revision — it reuses the GET_op associative lookup
// against a Number key, the way compiler.h's positional-access sugar
// assumes.
func (m *Machine) binaryOperators(opr opcode.OpCode) {
	y := m.popStack()
	x := m.popStack()

	switch opr {
	case opcode.ANDOP:
		m.pushStack(logicalAnd(x, y))
	case opcode.OROP:
		m.pushStack(logicalOr(x, y))
	case opcode.XOROP:
		m.pushStack(logicalXor(x, y))

	case opcode.EQ:
		m.pushStack(value.NewBoolean(compareOrNaN(x, y) == 0))
	case opcode.NE:
		c := compareOrNaN(x, y)
		m.pushStack(value.NewBoolean(c != 0))
	case opcode.GT:
		m.pushStack(value.NewBoolean(compareOrNaN(x, y) > 0))
	case opcode.GE:
		m.pushStack(value.NewBoolean(compareOrNaN(x, y) >= 0))
	case opcode.LT:
		m.pushStack(value.NewBoolean(compareOrNaN(x, y) < 0))
	case opcode.LE:
		m.pushStack(value.NewBoolean(compareOrNaN(x, y) <= 0))

	case opcode.ADDOP:
		m.pushStack(numericOp(x, y, value.Number.Add))
	case opcode.SUBOP:
		m.pushStack(numericOp(x, y, value.Number.Sub))
	case opcode.MULOP:
		m.pushStack(numericOp(x, y, value.Number.Mul))
	case opcode.DIVOP:
		m.pushStack(numericOp(x, y, value.Number.Div))
	case opcode.MODOP:
		m.pushStack(numericOp(x, y, value.Number.Mod))
	case opcode.FDIVOP:
		m.pushStack(numericOp(x, y, value.Number.FloorDiv))
	case opcode.REMOP:
		m.pushStack(numericOp(x, y, value.Number.Rem))
	case opcode.POWOP:
		m.pushStack(numericOp(x, y, value.Number.Pow))

	case opcode.INDEX:
		if a, ok := x.(value.Associative); ok {
			m.pushStack(a.Get(y))
			return
		}
		m.pushStack(value.NewError("Invalid index target."))

	default:
		m.pushStack(x)
	}
}

func logicalAnd(x, y value.Value) value.Value {
	bx, bxok := x.(value.Boolean)
	by, byok := y.(value.Boolean)
	if bxok && byok {
		return bx.And(by)
	}
	return value.NewError("Invalid logical operand.")
}

func logicalOr(x, y value.Value) value.Value {
	bx, bxok := x.(value.Boolean)
	by, byok := y.(value.Boolean)
	if bxok && byok {
		return bx.Or(by)
	}
	return value.NewError("Invalid logical operand.")
}

func logicalXor(x, y value.Value) value.Value {
	bx, bxok := x.(value.Boolean)
	by, byok := y.(value.Boolean)
	if bxok && byok {
		return bx.Xor(by)
	}
	return value.NewError("Invalid logical operand.")
}

func compareOrNaN(x, y value.Value) float64 {
	cx, ok := x.(value.Comparable)
	if !ok {
		return value.NaN()
	}
	return cx.Compare(y)
}

func numericOp(x, y value.Value, op func(value.Number, value.Number) value.Number) value.Value {
	nx, xok := x.(value.Number)
	ny, yok := y.(value.Number)
	if !xok || !yok {
		return value.Nil
	}
	return op(nx, ny)
}
