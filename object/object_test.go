package object

import (
	"testing"

	"cclox/ast"
	"cclox/token"
)

func TestEqualCrossTagNumericComparison(t *testing.T) {
	if !Equal(&Integer{Value: 10}, &Double{Value: 10.0}) {
		t.Errorf("10 == 10.0 should be true across tags")
	}
	if Equal(&Integer{Value: 10}, &Double{Value: 10.5}) {
		t.Errorf("10 == 10.5 should be false")
	}
}

func TestEqualDifferentNonNumericTagsAreUnequal(t *testing.T) {
	if Equal(&String{Value: "1"}, &Integer{Value: 1}) {
		t.Errorf("a string and an integer should never be equal")
	}
	if Equal(NilValue, False) {
		t.Errorf("nil and false should not be equal to each other")
	}
}

func TestEqualNilOnlyEqualsNil(t *testing.T) {
	if !Equal(NilValue, NilValue) {
		t.Errorf("nil should equal nil")
	}
	if Equal(NilValue, &Integer{Value: 0}) {
		t.Errorf("nil should not equal 0")
	}
	if Equal(NilValue, &String{Value: ""}) {
		t.Errorf("nil should not equal the empty string")
	}
}

func TestTruthyRule(t *testing.T) {
	cases := []struct {
		value Object
		want  bool
	}{
		{NilValue, false},
		{False, false},
		{True, true},
		{&Integer{Value: 0}, true},
		{&String{Value: ""}, true},
		{&Double{Value: 0}, true},
	}
	for _, c := range cases {
		if got := Truthy(c.value); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.value.Inspect(), got, c.want)
		}
	}
}

func TestClassFindMethodSearchesSuperclassChain(t *testing.T) {
	base := &Class{Name: "Base", Methods: map[string]*Function{
		"greet": {},
	}}
	derived := &Class{Name: "Derived", Superclass: base, Methods: map[string]*Function{}}

	fn, ok := derived.FindMethod("greet")
	if !ok || fn != base.Methods["greet"] {
		t.Fatalf("expected FindMethod to find the inherited method")
	}

	if _, ok := derived.FindMethod("missing"); ok {
		t.Fatalf("FindMethod should report false for an undeclared method")
	}
}

func TestClassArityDelegatesToInit(t *testing.T) {
	initDecl := &ast.Function{
		Name: token.New(token.IDENTIFIER, "init", nil, 1),
		Params: []token.Token{
			token.New(token.IDENTIFIER, "a", nil, 1),
			token.New(token.IDENTIFIER, "b", nil, 1),
		},
	}
	withInit := &Class{Name: "C", Methods: map[string]*Function{
		"init": {Declaration: initDecl},
	}}
	if got := withInit.Arity(); got != 2 {
		t.Errorf("got arity %d, want 2", got)
	}

	withoutInit := &Class{Name: "D", Methods: map[string]*Function{}}
	if got := withoutInit.Arity(); got != 0 {
		t.Errorf("got arity %d, want 0", got)
	}
}
