package interpreter

import (
	"math"

	"cclox/object"
	"cclox/token"
)

// addInt32, subInt32 and mulInt32 report whether a 32-bit
// signed result stayed in range, doing the check in 64-bit arithmetic since
// Go has no built-in overflow-checked integer ops. This mirrors the source's
// use of __builtin_add_overflow and friends: on overflow the caller falls
// back to double arithmetic instead of wrapping.
func addInt32(a, b int32) (int32, bool) {
	r := int64(a) + int64(b)
	return int32(r), r >= math.MinInt32 && r <= math.MaxInt32
}

func subInt32(a, b int32) (int32, bool) {
	r := int64(a) - int64(b)
	return int32(r), r >= math.MinInt32 && r <= math.MaxInt32
}

func mulInt32(a, b int32) (int32, bool) {
	r := int64(a) * int64(b)
	return int32(r), r >= math.MinInt32 && r <= math.MaxInt32
}

// asDouble widens an Integer or Double to a float64, the common type used to
// evaluate comparisons and the double-arithmetic fallback path.
func asDouble(o object.Object) (float64, bool) {
	switch v := o.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Double:
		return v.Value, true
	default:
		return 0, false
	}
}

func numberOperands(op token.Token, left, right object.Object) (float64, float64, error) {
	ld, ok1 := asDouble(left)
	rd, ok2 := asDouble(right)
	if !ok1 || !ok2 {
		return 0, 0, &RuntimeError{Tok: op, Message: "Operands must be numbers."}
	}
	return ld, rd, nil
}

// add implements `+`, the one arithmetic operator that also accepts two
// strings (concatenation). Integer operands that overflow int32 fall back
// to double addition rather than wrapping.
func add(op token.Token, left, right object.Object) (object.Object, error) {
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			return &object.String{Value: ls.Value + rs.Value}, nil
		}
	}

	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			if sum, inRange := addInt32(li.Value, ri.Value); inRange {
				return &object.Integer{Value: sum}, nil
			}
			return &object.Double{Value: float64(li.Value) + float64(ri.Value)}, nil
		}
	}

	ld, ok1 := asDouble(left)
	rd, ok2 := asDouble(right)
	if !ok1 || !ok2 {
		return nil, &RuntimeError{Tok: op, Message: "Operands must be two numbers or two strings."}
	}
	return &object.Double{Value: ld + rd}, nil
}

func subtract(op token.Token, left, right object.Object) (object.Object, error) {
	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			if diff, inRange := subInt32(li.Value, ri.Value); inRange {
				return &object.Integer{Value: diff}, nil
			}
			return &object.Double{Value: float64(li.Value) - float64(ri.Value)}, nil
		}
	}
	ld, rd, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	return &object.Double{Value: ld - rd}, nil
}

func multiply(op token.Token, left, right object.Object) (object.Object, error) {
	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			if prod, inRange := mulInt32(li.Value, ri.Value); inRange {
				return &object.Integer{Value: prod}, nil
			}
			return &object.Double{Value: float64(li.Value) * float64(ri.Value)}, nil
		}
	}
	ld, rd, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	return &object.Double{Value: ld * rd}, nil
}

// divide integer-divides two Integers unless that divides by zero or
// overflows (MinInt32 / -1), in which case it falls back to double division:
// a zero divisor yields +Inf/-Inf/NaN instead of a Go panic, and
// MinInt32 / -1 yields the double 2147483648.
func divide(op token.Token, left, right object.Object) (object.Object, error) {
	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			if ri.Value != 0 && !(li.Value == math.MinInt32 && ri.Value == -1) {
				return &object.Integer{Value: li.Value / ri.Value}, nil
			}
			return &object.Double{Value: float64(li.Value) / float64(ri.Value)}, nil
		}
	}
	ld, rd, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	return &object.Double{Value: ld / rd}, nil
}
