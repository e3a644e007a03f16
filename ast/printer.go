package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression tree in a deterministic Lisp-prefix form,
// e.g. `(+ 1 (* 2 3))`. It never evaluates the expression; it only
// traverses it, which makes it useful for golden tests of the parser's
// output independent of the interpreter.
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Call:
		args := make([]Expr, 0, len(e.Args)+1)
		args = append(args, e.Callee)
		args = append(args, e.Args...)
		return parenthesize("call", args...)
	case *Get:
		return parenthesize("get "+e.Name.Lexeme, e.Object)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Literal:
		return literalString(e.Value)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Set:
		return parenthesize("set "+e.Name.Lexeme, e.Object, e.Value)
	case *Super:
		return "(super " + e.Method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Variable:
		return e.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}

func literalString(value any) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
