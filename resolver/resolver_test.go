package resolver

import (
	"bytes"
	"testing"

	"cclox/ast"
	"cclox/diagnostics"
	"cclox/lexer"
	"cclox/parser"
)

type recordingBinder struct {
	depths map[ast.Expr]int
}

func newRecordingBinder() *recordingBinder {
	return &recordingBinder{depths: make(map[ast.Expr]int)}
}

func (b *recordingBinder) Resolve(expr ast.Expr, depth int) {
	b.depths[expr] = depth
}

func resolve(t *testing.T, source string) (*recordingBinder, []ast.Stmt, *diagnostics.Diagnostics) {
	t.Helper()
	var buf bytes.Buffer
	diags := diagnostics.New(&buf)
	toks := lexer.New(source, diags).ScanTokens()
	stmts := parser.New(toks, diags).Parse()
	if diags.HadError {
		t.Fatalf("unexpected parse error scanning %q", source)
	}
	binder := newRecordingBinder()
	New(binder, diags).ResolveStatements(stmts)
	return binder, stmts, diags
}

func TestResolveClosureCapturesOuterLocal(t *testing.T) {
	source := `
	{
		var a = 1;
		fun show() { print a; }
		show();
	}`
	binder, stmts, diags := resolve(t, source)
	if diags.HadError {
		t.Fatalf("unexpected resolution error")
	}

	block := stmts[0].(*ast.Block)
	fn := block.Statements[1].(*ast.Function)
	printStmt := fn.Body[0].(*ast.Print)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := binder.depths[variable]
	if !ok || depth != 1 {
		t.Fatalf("got depth %d (found=%v), want 1", depth, ok)
	}
}

func TestResolveSelfReferentialInitializerIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "{ var a = a; }")
	if !diags.HadError {
		t.Fatalf("expected 'Can't read local variable in its own initializer.'")
	}
}

func TestResolveSelfInheritingClassIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "class Oops < Oops {}")
	if !diags.HadError {
		t.Fatalf("expected 'A class can't inherit from itself.'")
	}
}

func TestResolveReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "return 1;")
	if !diags.HadError {
		t.Fatalf("expected 'Can't return from top-level code.'")
	}
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "print this;")
	if !diags.HadError {
		t.Fatalf("expected 'Can't use 'this' outside of a class.'")
	}
}

func TestResolveSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "class A { m() { super.m(); } }")
	if !diags.HadError {
		t.Fatalf("expected 'Can't use 'super' in a class with no superclass.'")
	}
}

func TestResolveDuplicateDeclarationInSameScopeIsAnError(t *testing.T) {
	_, _, diags := resolve(t, "{ var a = 1; var a = 2; }")
	if !diags.HadError {
		t.Fatalf("expected 'Already a variable with this name in this scope.'")
	}
}
