// Package object defines Lox's dynamically-typed value domain: the tagged
// union of booleans, nil, numbers, strings, callables (functions, classes,
// natives) and class instances.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"cclox/ast"
	"cclox/environment"
)

// Type tags the dynamic kind of an Object, mirroring the source's
// std::variant alternatives.
type Type string

const (
	INTEGER         Type = "INTEGER"
	DOUBLE          Type = "DOUBLE"
	STRING          Type = "STRING"
	BOOLEAN         Type = "BOOLEAN"
	NIL             Type = "NIL"
	FUNCTION        Type = "FUNCTION"
	NATIVE_FUNCTION Type = "NATIVE_FUNCTION"
	CLASS           Type = "CLASS"
	INSTANCE        Type = "INSTANCE"
)

// Object is implemented by every Lox runtime value.
type Object interface {
	Type() Type
	// Inspect renders the value the way Lox's `print` statement does.
	Inspect() string
}

// Callable is implemented by every value that can appear as the callee of
// a Call expression. Invocation itself is dispatched by the interpreter
// package (via a type switch), not here, so this package stays free of any
// dependency on interpreter control flow.
type Callable interface {
	Object
	Arity() int
}

// Integer is a 32-bit signed integer value.
type Integer struct{ Value int32 }

func (*Integer) Type() Type        { return INTEGER }
func (i *Integer) Inspect() string { return strconv.FormatInt(int64(i.Value), 10) }

// Double is an IEEE-754 double value.
type Double struct{ Value float64 }

func (*Double) Type() Type { return DOUBLE }
func (d *Double) Inspect() string {
	return strconv.FormatFloat(d.Value, 'g', -1, 64)
}

// String is a Lox string value.
type String struct{ Value string }

func (*String) Type() Type        { return STRING }
func (s *String) Inspect() string { return s.Value }

// Boolean is a Lox boolean value. True and False below are the only two
// instances ever constructed, so callers may compare with == instead of
// allocating fresh Booleans.
type Boolean struct{ Value bool }

func (*Boolean) Type() Type { return BOOLEAN }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

// BoolOf returns the shared True or False instance for a Go bool.
func BoolOf(v bool) *Boolean {
	if v {
		return True
	}
	return False
}

// Nil is Lox's `nil` value. There is exactly one instance, NilValue.
type Nil struct{}

func (*Nil) Type() Type      { return NIL }
func (*Nil) Inspect() string { return "nil" }

// NilValue is the single Nil instance every nil-valued expression yields.
var NilValue = &Nil{}

// Function is a user-defined function or method: its declaration plus the
// environment that was current when the declaration was executed.
type Function struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

func (*Function) Type() Type { return FUNCTION }
func (f *Function) Inspect() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Bind returns a copy of f whose closure has been extended with a new scope
// binding `this` to instance, per the "bound method" concept: a method
// invoked through an instance always sees that instance as `this`.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// NativeFunction wraps a Go function as a callable Lox value, e.g. clock().
type NativeFunction struct {
	Name   string
	Params int
	Fn     func(args []Object) (Object, error)
}

func (*NativeFunction) Type() Type      { return NATIVE_FUNCTION }
func (*NativeFunction) Inspect() string { return "<native fn>" }
func (n *NativeFunction) Arity() int    { return n.Params }

// Class is a Lox class: its name, optional superclass, and its own (not
// inherited) method table.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() Type        { return CLASS }
func (c *Class) Inspect() string { return c.Name }

// Arity is the arity of the class's initializer, or 0 if it declares none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name on the class itself, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a single object of some Class, with dynamically-assignable
// fields that shadow methods of the same name.
type Instance struct {
	Class  *Class
	Fields map[string]Object
}

// NewInstance creates a zero-field instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Object)}
}

func (*Instance) Type() Type { return INSTANCE }
func (i *Instance) Inspect() string {
	return i.Class.Name + " instance"
}

// Equal implements Lox's cross-tag equality rule: integers and doubles
// compare numerically regardless of tag; every other pair of tags is only
// equal to itself.
func Equal(a, b Object) bool {
	an, aIsNum := asNumber(a)
	bn, bIsNum := asNumber(b)
	if aIsNum && bIsNum {
		return an == bn
	}

	switch av := a.(type) {
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	default:
		return a == b
	}
}

func asNumber(o Object) (float64, bool) {
	switch v := o.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Double:
		return v.Value, true
	default:
		return 0, false
	}
}

// Truthy implements Lox's truthiness rule: nil and false are falsy, every
// other value (including 0, 0.0 and "") is truthy. The source's other,
// stricter variant (treating 0 and "" as falsy too) is a historical
// artifact this implementation does not follow.
func Truthy(o Object) bool {
	switch v := o.(type) {
	case *Nil:
		return false
	case *Boolean:
		return v.Value
	default:
		return true
	}
}

// TypeName renders a Type for embedding in error messages.
func TypeName(o Object) string {
	return strings.ToLower(string(o.Type()))
}
