package value

import (
	"testing"

	"github.com/maxjmartin/Olly/internal/opcode"
)

func TestOpCallStringDelegatesToOpCode(t *testing.T) {
	oc := NewOpCall(opcode.ADDOP)
	if got := oc.String(); got != opcode.ADDOP.String() {
		t.Fatalf("OpCall.String() = %q, want %q", got, opcode.ADDOP.String())
	}
}

func TestOpCallCompare(t *testing.T) {
	a := NewOpCall(opcode.ADDOP)
	b := NewOpCall(opcode.ADDOP)
	c := NewOpCall(opcode.MULOP)
	if a.Compare(b) != 0 {
		t.Fatalf("equal opcodes should compare 0")
	}
	if !IsNaNCompare(a.Compare(c)) {
		t.Fatalf("differing opcodes should be not-comparable")
	}
}

func TestOpCallAlwaysTruthy(t *testing.T) {
	if !NewOpCall(opcode.ADDOP).Is() {
		t.Fatalf("OpCall should always be truthy")
	}
}
