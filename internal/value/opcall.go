package value

import "github.com/maxjmartin/Olly/internal/opcode"

// OpCall wraps a single opcode; it is atomic and invokes a built-in when
// the evaluator dispatches it (spec §3).
type OpCall struct {
	Code opcode.OpCode
}

func NewOpCall(c opcode.OpCode) OpCall { return OpCall{Code: c} }

func (OpCall) Kind() Kind       { return KindOpCall }
func (OpCall) Is() bool         { return true }
func (o OpCall) String() string { return o.Code.String() }

func (o OpCall) Compare(other Value) float64 {
	oo, ok := other.(OpCall)
	if !ok {
		return NaN()
	}
	if o.Code == oo.Code {
		return 0
	}
	return NaN()
}
