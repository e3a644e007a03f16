package interpreter

import (
	"cclox/object"
	"cclox/token"
)

// RuntimeError is raised by expression and statement evaluation for every
// dynamic type/arity/property violation. It satisfies diagnostics.RuntimeError
// so the top-level driver can report it without this package depending on
// diagnostics for anything but that interface.
type RuntimeError struct {
	Tok     token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func (e *RuntimeError) Token() token.Token { return e.Tok }

// returnSignal unwinds a function call's executed block back to the call
// site carrying the returned value. It is never surfaced to a caller outside
// this package; callFunction always catches it.
type returnSignal struct {
	Value object.Object
}

func (r *returnSignal) Error() string { return "return" }
