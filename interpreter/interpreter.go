// Package interpreter tree-walks the resolved AST, evaluating expressions
// against a chain of environments and executing statements for effect.
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"cclox/ast"
	"cclox/diagnostics"
	"cclox/environment"
	"cclox/object"
)

// Interpreter holds the mutable state a running program needs: the fixed
// global scope, the environment currently in effect, and the resolver's
// binding-depth annotations keyed by AST node identity.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      map[ast.Expr]int
	out         io.Writer
}

// New creates an Interpreter that writes `print` output to out and defines
// the native functions every program starts with.
func New(out io.Writer) *Interpreter {
	globals := environment.New()
	globals.Define("clock", clockNative())

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		out:         out,
	}
}

func clockNative() *object.NativeFunction {
	return &object.NativeFunction{
		Name:   "clock",
		Params: 0,
		Fn: func(args []object.Object) (object.Object, error) {
			return &object.Double{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	}
}

// Resolve records that expr, wherever it is evaluated, should read/write the
// variable it names in the environment depth scopes up from the one current
// at that point. It satisfies resolver.Binder.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.locals[expr] = depth
}

// Interpret runs a whole program. It should only be called once the lexer,
// parser and resolver have all reported no errors; a RuntimeError aborts the
// remaining statements and is reported to diags.
func (i *Interpreter) Interpret(statements []ast.Stmt, diags *diagnostics.Diagnostics) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			var rtErr diagnostics.RuntimeError
			if errors.As(err, &rtErr) {
				diags.ReportRuntimeError(rtErr)
			}
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case nil:
		return nil
	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.Print:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.Inspect())
		return nil
	case *ast.Var:
		value := object.Object(object.NilValue)
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return i.executeBlock(s.Statements, environment.NewChild(i.environment))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if object.Truthy(cond) {
			return i.execute(s.Then)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := &object.Function{Declaration: s, Closure: i.environment}
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		value := object.Object(object.NilValue)
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}
	case *ast.Class:
		return i.executeClass(s)
	default:
		return nil
	}
}

// executeBlock runs statements against env, restoring the previously active
// environment before returning (including on error, so a RuntimeError or
// returnSignal doesn't leak the block's scope into the caller).
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass implements class declaration: the name is bound to nil before
// the superclass and methods are evaluated (so a method may refer to its own
// class by name), then reassigned once the Class value is built.
func (i *Interpreter) executeClass(s *ast.Class) error {
	i.environment.Define(s.Name.Lexeme, object.NilValue)

	var superclass *object.Class
	if s.Superclass != nil {
		sup, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sup.(*object.Class)
		if !ok {
			return &RuntimeError{Tok: s.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = environment.NewChild(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &object.Function{
			Declaration:   m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &object.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.environment.Assign(s.Name, class)
}
