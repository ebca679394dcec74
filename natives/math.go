/*
File    : mixvm/natives/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Grounded on the teacher's std/math.go builtin table; mixvm's Value has a
single numeric Kind (no separate integer/float types), so the
int-vs-float promotion logic there collapses to plain float64 math.
*/
package natives

import (
	"math"

	"github.com/akashmaji946/mixvm/value"
)

func init() {
	register("math",
		&value.NativeFn{Name: "sqrt", Arity: 1, Fn: mathSqrt},
		&value.NativeFn{Name: "pow", Arity: 2, Fn: mathPow},
		&value.NativeFn{Name: "floor", Arity: 1, Fn: mathFloor},
		&value.NativeFn{Name: "ceil", Arity: 1, Fn: mathCeil},
		&value.NativeFn{Name: "abs", Arity: 1, Fn: mathAbs},
		&value.NativeFn{Name: "min", Arity: 2, Fn: mathMin},
		&value.NativeFn{Name: "max", Arity: 2, Fn: mathMax},
	)
}

func numArg(name string, args []value.Value, i int) (float64, error) {
	if args[i].Kind != value.KindNumber {
		return 0, badArgType(name, i+1, "number", args[i].Kind)
	}
	return args[i].Number, nil
}

// sqrt returns the square root of a non-negative number.
//
// Syntax: sqrt(number)
func mathSqrt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("sqrt", 1, len(args))
	}
	n, err := numArg("sqrt", args, 0)
	if err != nil {
		return value.Nil, err
	}
	if n < 0 {
		return value.Nil, badArgType("sqrt", 1, "non-negative number", args[0].Kind)
	}
	return value.Number(math.Sqrt(n)), nil
}

// pow returns base raised to the power of exponent.
//
// Syntax: pow(base, exponent)
func mathPow(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("pow", 2, len(args))
	}
	base, err := numArg("pow", args, 0)
	if err != nil {
		return value.Nil, err
	}
	exp, err := numArg("pow", args, 1)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Pow(base, exp)), nil
}

// floor returns the largest integer-valued number less than or equal to n.
//
// Syntax: floor(n)
func mathFloor(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("floor", 1, len(args))
	}
	n, err := numArg("floor", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Floor(n)), nil
}

// ceil returns the smallest integer-valued number greater than or equal to n.
//
// Syntax: ceil(n)
func mathCeil(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("ceil", 1, len(args))
	}
	n, err := numArg("ceil", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Ceil(n)), nil
}

// abs returns the absolute value of n.
//
// Syntax: abs(n)
func mathAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("abs", 1, len(args))
	}
	n, err := numArg("abs", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Abs(n)), nil
}

// min returns the smaller of two numbers.
//
// Syntax: min(a, b)
func mathMin(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("min", 2, len(args))
	}
	a, err := numArg("min", args, 0)
	if err != nil {
		return value.Nil, err
	}
	b, err := numArg("min", args, 1)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Min(a, b)), nil
}

// max returns the larger of two numbers.
//
// Syntax: max(a, b)
func mathMax(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("max", 2, len(args))
	}
	a, err := numArg("max", args, 0)
	if err != nil {
		return value.Nil, err
	}
	b, err := numArg("max", args, 1)
	if err != nil {
		return value.Nil, err
	}
	return value.Number(math.Max(a, b)), nil
}
