package environment

import (
	"testing"

	"cclox/token"
)

func nameToken(lexeme string) token.Token {
	return token.New(token.IDENTIFIER, lexeme, nil, 1)
}

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", 1)

	v, err := env.Get(nameToken("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestGetWalksEnclosingChain(t *testing.T) {
	outer := New()
	outer.Define("a", "outer-value")
	inner := NewChild(outer)

	v, err := inner.Get(nameToken("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "outer-value" {
		t.Errorf("got %v, want outer-value", v)
	}
}

func TestGetUndefinedReturnsError(t *testing.T) {
	env := New()
	_, err := env.Get(nameToken("missing"))
	if err == nil {
		t.Fatalf("expected an UndefinedVariableError")
	}
	uv, ok := err.(*UndefinedVariableError)
	if !ok {
		t.Fatalf("got %T, want *UndefinedVariableError", err)
	}
	if uv.Token().Lexeme != "missing" {
		t.Errorf("got token lexeme %q, want missing", uv.Token().Lexeme)
	}
}

func TestAssignRequiresExistingBinding(t *testing.T) {
	env := New()
	if err := env.Assign(nameToken("missing"), 1); err == nil {
		t.Fatalf("expected an error assigning to an undefined variable")
	}
}

func TestAssignWalksEnclosingChain(t *testing.T) {
	outer := New()
	outer.Define("a", 1)
	inner := NewChild(outer)

	if err := inner.Assign(nameToken("a"), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get(nameToken("a"))
	if v != 2 {
		t.Errorf("assignment through a child environment should mutate the ancestor, got %v", v)
	}
}

func TestGetAtAndAssignAtUseExplicitDistance(t *testing.T) {
	global := New()
	middle := NewChild(global)
	inner := NewChild(middle)

	middle.Define("a", "middle-value")

	if got := inner.GetAt(1, "a"); got != "middle-value" {
		t.Errorf("got %v, want middle-value", got)
	}

	inner.AssignAt(1, "a", "updated")
	if got := middle.GetAt(0, "a"); got != "updated" {
		t.Errorf("got %v, want updated", got)
	}
}
