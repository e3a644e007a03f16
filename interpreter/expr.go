package interpreter

import (
	"fmt"

	"cclox/ast"
	"cclox/object"
	"cclox/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (object.Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalToObject(e.Value), nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}

func literalToObject(value any) object.Object {
	switch v := value.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.BoolOf(v)
	case int32:
		return &object.Integer{Value: v}
	case float64:
		return &object.Double{Value: v}
	case string:
		return &object.String{Value: v}
	default:
		return object.NilValue
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (object.Object, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG:
		return object.BoolOf(!object.Truthy(right)), nil
	case token.MINUS:
		// Negation is subtraction from zero, sharing subtract's
		// overflow-to-double fallback and "Operands must be numbers."
		// error instead of duplicating that logic here.
		return subtract(e.Operator, &object.Integer{Value: 0}, right)
	default:
		return nil, fmt.Errorf("interpreter: unhandled unary operator %s", e.Operator.Type)
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (object.Object, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG_EQUAL:
		return object.BoolOf(!object.Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		return object.BoolOf(object.Equal(left, right)), nil
	case token.GREATER:
		ld, rd, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ld > rd), nil
	case token.GREATER_EQUAL:
		ld, rd, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ld >= rd), nil
	case token.LESS:
		ld, rd, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ld < rd), nil
	case token.LESS_EQUAL:
		ld, rd, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return object.BoolOf(ld <= rd), nil
	case token.PLUS:
		return add(e.Operator, left, right)
	case token.MINUS:
		return subtract(e.Operator, left, right)
	case token.STAR:
		return multiply(e.Operator, left, right)
	case token.SLASH:
		return divide(e.Operator, left, right)
	default:
		return nil, fmt.Errorf("interpreter: unhandled binary operator %s", e.Operator.Type)
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (object.Object, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if object.Truthy(left) {
			return left, nil
		}
	} else if !object.Truthy(left) {
		return left, nil
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (object.Object, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, value)
	} else if err := i.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evalGet(e *ast.Get) (object.Object, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, &RuntimeError{Tok: e.Name, Message: "Only instances have properties."}
	}
	if value, ok := instance.Fields[e.Name.Lexeme]; ok {
		return value, nil
	}
	if method, ok := instance.Class.FindMethod(e.Name.Lexeme); ok {
		return method.Bind(instance), nil
	}
	return nil, &RuntimeError{Tok: e.Name, Message: fmt.Sprintf("Undefined property '%s'.", e.Name.Lexeme)}
}

func (i *Interpreter) evalSet(e *ast.Set) (object.Object, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, &RuntimeError{Tok: e.Name, Message: "Only instances have fields."}
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Fields[e.Name.Lexeme] = value
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (object.Object, error) {
	depth := i.locals[e]
	superAny := i.environment.GetAt(depth, "super")
	superclass, _ := superAny.(*object.Class)

	thisAny := i.environment.GetAt(depth-1, "this")
	instance, _ := thisAny.(*object.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &RuntimeError{Tok: e.Method, Message: fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme)}
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (object.Object, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.environment.GetAt(depth, name.Lexeme).(object.Object), nil
	}
	value, err := i.globals.Get(name)
	if err != nil {
		return nil, err
	}
	return value.(object.Object), nil
}
