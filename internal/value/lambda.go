package value

// Lambda is a closure: an argument expression, a body expression, and the
// scope captured at definition time (spec §3). The captured scope excludes
// the lambda's own binding name to avoid an infinite self-capture cycle; a
// companion "self" entry records that name as a Symbol so a recursive body
// can ask what it is called (spec §5.8, grounded on lambda.h's bind_scope).
type Lambda struct {
	Args  Value
	Body  Value
	Scope map[string]Value
}

// NewLambda constructs a Lambda with no captured scope yet; BindScope and
// BindVariable fill it in during `def`.
func NewLambda(args, body Value) Lambda {
	return Lambda{Args: args, Body: body, Scope: map[string]Value{}}
}

func (Lambda) Kind() Kind { return KindLambda }

func (l Lambda) Is() bool {
	isArgs := false
	if sv, ok := l.Args.(Sequence); ok {
		isArgs = sv.Len() > 0
	} else {
		isArgs = l.Args != nil && l.Args.Is()
	}
	isBody := false
	if sv, ok := l.Body.(Sequence); ok {
		isBody = sv.Len() > 0
	} else {
		isBody = l.Body != nil && l.Body.Is()
	}
	return isArgs || isBody
}

func (l Lambda) String() string {
	if !l.Is() {
		return "lambda():;"
	}
	s := "lambda"
	if l.Args != nil {
		s += l.Args.String()
	}
	s += ": "
	if body, ok := l.Body.(Expression); ok {
		for _, v := range body.Elements() {
			s += v.String() + " "
		}
	}
	return s + ";"
}

func (l Lambda) Compare(other Value) float64 {
	ol, ok := other.(Lambda)
	if !ok {
		return NaN()
	}
	argsEq := Equal(l.Args, ol.Args)
	bodyEq := Equal(l.Body, ol.Body)
	if argsEq && bodyEq {
		return 0
	}
	return NaN()
}

// BindScope copies every binding from the enclosing scope into the
// lambda's captured scope, except the one named by the enclosing scope's
// "self" entry (lambda.h's bind_scope fix-up).
func (l Lambda) BindScope(enclosing map[string]Value) Lambda {
	selfName := ""
	if s, ok := enclosing["self"]; ok {
		selfName = s.String()
	}
	scope := map[string]Value{}
	for k, v := range l.Scope {
		scope[k] = v
	}
	for k, v := range enclosing {
		if k == selfName {
			continue
		}
		scope[k] = v
	}
	l.Scope = scope
	return l
}

// BindVariable returns a copy of l with var's printed name bound to val in
// its captured scope (lambda.h's bind_variable; used both for the
// recursive self-reference at `def` time and for BIND's partial
// application, spec §5.3).
func (l Lambda) BindVariable(v Value, val Value) Lambda {
	scope := map[string]Value{}
	for k, sv := range l.Scope {
		scope[k] = sv
	}
	scope[v.String()] = val
	l.Scope = scope
	return l
}
