package interpreter

import (
	"errors"
	"fmt"

	"cclox/ast"
	"cclox/environment"
	"cclox/object"
)

func (i *Interpreter) evalCall(e *ast.Call) (object.Object, error) {
	calleeObj, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Object, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callee, ok := calleeObj.(object.Callable)
	if !ok {
		return nil, &RuntimeError{Tok: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != callee.Arity() {
		return nil, &RuntimeError{
			Tok:     e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callee.Arity(), len(args)),
		}
	}

	switch fn := callee.(type) {
	case *object.Function:
		return i.callFunction(fn, args)
	case *object.NativeFunction:
		return fn.Fn(args)
	case *object.Class:
		return i.instantiate(fn, args)
	default:
		return nil, &RuntimeError{Tok: e.Paren, Message: "Can only call functions and classes."}
	}
}

// callFunction runs fn's body against a fresh environment binding its
// parameters, chained off the closure it was declared in (not the caller's
// environment). An initializer always yields `this` from that environment,
// whether or not its body executed an explicit `return`.
func (i *Interpreter) callFunction(fn *object.Function, args []object.Object) (object.Object, error) {
	callEnv := environment.NewChild(fn.Closure)
	for idx, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(fn.Declaration.Body, callEnv)
	if err != nil {
		var ret *returnSignal
		if errors.As(err, &ret) {
			if fn.IsInitializer {
				return fn.Closure.GetAt(0, "this").(object.Object), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this").(object.Object), nil
	}
	return object.NilValue, nil
}

// instantiate builds a new Instance and, if the class declares one, runs its
// init method against it before returning the instance itself (never
// whatever init returns).
func (i *Interpreter) instantiate(class *object.Class, args []object.Object) (object.Object, error) {
	instance := object.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := i.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
