/*
File    : mixvm/natives/arrays.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Grounded on the teacher's std/arrays.go, trimmed to the two operations
that fit mixvm's fixed-size array model (no in-place growth, see §6A).
*/
package natives

import "github.com/akashmaji946/mixvm/value"

func init() {
	register("array",
		&value.NativeFn{Name: "push_copy", Arity: 2, Fn: arrPushCopy},
		&value.NativeFn{Name: "index_of", Arity: 2, Fn: arrIndexOf},
	)
}

// push_copy returns a new array one element longer than a, with v
// appended; a itself is left untouched. Arrays are fixed-size in place,
// so growth always allocates.
//
// Syntax: push_copy(a, v)
func arrPushCopy(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("push_copy", 2, len(args))
	}
	if args[0].Kind != value.KindArray {
		return value.Nil, badArgType("push_copy", 1, "array", args[0].Kind)
	}
	src := args[0].Array.Elems
	elems := make([]value.Value, len(src)+1)
	copy(elems, src)
	elems[len(src)] = args[1]
	return value.ArrayValue(&value.Array{Elems: elems}), nil
}

// index_of returns the index of the first element of a equal to v under
// the language's `==` semantics, or -1 if none matches.
//
// Syntax: index_of(a, v)
func arrIndexOf(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("index_of", 2, len(args))
	}
	if args[0].Kind != value.KindArray {
		return value.Nil, badArgType("index_of", 1, "array", args[0].Kind)
	}
	for i, e := range args[0].Array.Elems {
		if value.Equal(e, args[1]) {
			return value.Number(float64(i)), nil
		}
	}
	return value.Number(-1), nil
}
