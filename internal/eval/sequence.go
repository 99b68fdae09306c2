package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// sequenceOperators implements LEAD/LAST/PLACE/DROP and their compiled
// compound forms (spec §4.3, grounded on
// Oliver_Lang/.../sequence_operators.h). The compound opcodes
// (PLACELEAD/PLACELAST/DROPLEAD/DROPLAST — surface `-->`/`<--`/`>>>`/`<<<`)
// expand at dispatch time into the two-opcode runtime sequence the source
// pushes onto the code stack, rather than being rewritten at compile time
// (spec §9's resolution of that ambiguity).
func (m *Machine) sequenceOperators(opr opcode.OpCode) {
	switch opr {
	case opcode.LEAD:
		x := m.popStack()
		m.pushStack(leadOf(x))

	case opcode.LAST:
		x := m.popStack()
		m.pushStack(lastOf(x))

	case opcode.PLACE:
		y := m.popStack()
		x := m.popStack()
		next := m.nextFromCode()

		oc, _ := next.(value.OpCall)
		switch {
		case oc.Code == opcode.LEAD:
			m.pushStack(placeLead(y, x))
		case oc.Code == opcode.LAST:
			m.pushStack(placeLast(x, y))
		default:
			m.pushStack(value.NewError("Invalid object placement."))
		}

	case opcode.DROP:
		x := m.popStack()
		next := m.nextFromCode()

		oc, _ := next.(value.OpCall)
		switch {
		case oc.Code == opcode.LEAD:
			m.pushStack(dropLead(x))
		case oc.Code == opcode.LAST:
			m.pushStack(dropLast(x))
		default:
			m.pushStack(value.NewError("Invalid object drop."))
		}

	case opcode.PLACELEAD:
		x := m.nextFromCode()
		m.pushCode(value.NewOpCall(opcode.LEAD))
		m.pushCode(value.NewOpCall(opcode.PLACE))
		m.pushCode(x)

	case opcode.PLACELAST:
		x := m.nextFromCode()
		m.pushCode(value.NewOpCall(opcode.LAST))
		m.pushCode(value.NewOpCall(opcode.PLACE))
		m.pushCode(x)

	case opcode.DROPLEAD:
		x := m.nextFromCode()
		m.pushCode(value.NewOpCall(opcode.LEAD))
		m.pushCode(value.NewOpCall(opcode.DROP))
		m.pushCode(x)

	case opcode.DROPLAST:
		m.pushCode(value.NewOpCall(opcode.LAST))
		m.pushCode(value.NewOpCall(opcode.DROP))
	}
}

func leadOf(v value.Value) value.Value {
	if s, ok := v.(value.Sequence); ok {
		return s.Lead()
	}
	return value.Nil
}

func lastOf(v value.Value) value.Value {
	if s, ok := v.(value.Sequence); ok {
		return s.Last()
	}
	return value.Nil
}

func placeLead(container, v value.Value) value.Value {
	if s, ok := container.(value.Sequence); ok {
		return s.PlaceLead(v)
	}
	return value.NewError("Invalid object placement.")
}

func placeLast(container, v value.Value) value.Value {
	if s, ok := container.(value.Sequence); ok {
		return s.PlaceLast(v)
	}
	return value.NewError("Invalid object placement.")
}

func dropLead(v value.Value) value.Value {
	if s, ok := v.(value.Sequence); ok {
		return s.DropLead()
	}
	return value.NewError("Invalid object drop.")
}

func dropLast(v value.Value) value.Value {
	if s, ok := v.(value.Sequence); ok {
		return s.DropLast()
	}
	return value.NewError("Invalid object drop.")
}
