package parser

import (
	"bytes"
	"testing"

	"cclox/ast"
	"cclox/diagnostics"
	"cclox/lexer"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *diagnostics.Diagnostics) {
	t.Helper()
	var buf bytes.Buffer
	diags := diagnostics.New(&buf)
	toks := lexer.New(source, diags).ScanTokens()
	stmts := New(toks, diags).Parse()
	return stmts, diags
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts, diags := parse(t, "1 + 2 * 3;")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	expr := stmts[0].(*ast.Expression).Expression
	got := ast.PrintExpr(expr)
	want := "(+ 1 (* 2 3))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseGroupingAndUnary(t *testing.T) {
	stmts, diags := parse(t, "-(1 + 2);")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	got := ast.PrintExpr(stmts[0].(*ast.Expression).Expression)
	want := "(- (group (+ 1 2)))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseAssignmentTargetReinterpretation(t *testing.T) {
	stmts, diags := parse(t, "a.b = 1;")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	if _, ok := stmts[0].(*ast.Expression).Expression.(*ast.Set); !ok {
		t.Fatalf("got %T, want *ast.Set", stmts[0].(*ast.Expression).Expression)
	}
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, diags := parse(t, "1 = 2;")
	if !diags.HadError {
		t.Fatalf("expected an 'Invalid assignment target.' error")
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, diags := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	outer, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block wrapping the initializer", stmts[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("got %d statements in desugared for, want 2 (init, while)", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.Var); !ok {
		t.Fatalf("first desugared statement should be the initializer, got %T", outer.Statements[0])
	}
	whileStmt, ok := outer.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("second desugared statement should be *ast.While, got %T", outer.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.Block)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("while body should bundle the original body with the increment")
	}
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, diags := parse(t, "class Cake < Pastry { taste() { return 1; } }")
	if diags.HadError {
		t.Fatalf("unexpected parse error")
	}
	class := stmts[0].(*ast.Class)
	if class.Name.Lexeme != "Cake" {
		t.Errorf("got class name %q, want Cake", class.Name.Lexeme)
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "Pastry" {
		t.Fatalf("expected superclass Pastry, got %v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "taste" {
		t.Fatalf("expected one method named taste, got %v", class.Methods)
	}
}

func TestParseSynchronizationRecoversAfterError(t *testing.T) {
	stmts, diags := parse(t, "var = ; var b = 1;")
	if !diags.HadError {
		t.Fatalf("expected a parse error")
	}
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the parser to recover and still parse `var b = 1;`, got %v", stmts)
	}
}
