package eval

import (
	"github.com/maxjmartin/Olly/internal/opcode"
	"github.com/maxjmartin/Olly/internal/value"
)

// functionOperators implements ENDSCOPE/APPLY/RESULT, grounded on
// Oliver_Lang/.../function_operators.h's end_scope_op/apply_op and
// get_result_queue.
func (m *Machine) functionOperators(opr opcode.OpCode) {
	switch opr {
	case opcode.ENDSCOPE:
		m.endScope()

	case opcode.APPLY:
		// Part two of `var <== call`: the call already ran (its result sits
		// on the value stack), vars is still waiting on the code stack.
		// Rewrite the code as a plain `let vars = result` and let LETOP
		// run it (function_operators.h's apply_op).
		vals := m.popStack()
		vars := m.nextFromCode()

		m.pushCode(value.NewOpCall(opcode.EQ))
		m.pushCode(vals)
		m.pushCode(vars)
		m.pushCode(value.NewOpCall(opcode.LETOP))

	case opcode.RESULT:
		// Standalone diagnostic: the resolved top code frame, mirroring
		// get_result_queue's symbol-resolving walk without the return-only
		// scope unwind.
		m.pushStack(m.resultQueue(true))
	}
}
