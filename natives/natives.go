/*
File    : mixvm/natives/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package natives supplies mixvm's host-provided functions, exposed to
language source as ordinary callable Values. Each group below mirrors the
teacher's std/ builtin-table pattern: a package-level slice of {Name,
Callback} entries appended during init, except keyed by group name so
config.Config.EnabledNatives can select which groups a VM is built with.
*/
package natives

import (
	"fmt"

	"github.com/akashmaji946/mixvm/value"
)

// entry is one native function registration: its Value.NativeFn. The
// group it belongs to is the key it is stored under in groups.
type entry struct {
	fn *value.NativeFn
}

// groups maps a native group name to its member functions. Populated by
// each group's init() via register.
var groups = map[string][]entry{}

func register(group string, fns ...*value.NativeFn) {
	for _, fn := range fns {
		groups[group] = append(groups[group], entry{fn: fn})
	}
}

// Globals builds the set of name -> Value bindings for every requested
// group, skipping unknown group names silently (config validation is not
// this package's concern).
func Globals(enabledGroups []string) map[string]value.Value {
	out := make(map[string]value.Value)
	for _, g := range enabledGroups {
		for _, e := range groups[g] {
			out[e.fn.Name] = value.NativeValue(e.fn)
		}
	}
	return out
}

// wrongArity builds the standard arity-mismatch error for a native
// function, in the teacher's "ERROR: wrong number of arguments" wording.
func wrongArity(name string, want, got int) error {
	return fmt.Errorf("ERROR: wrong number of arguments to `%s`. got=%d, want=%d", name, got, want)
}

// badArgType builds the standard argument-type error.
func badArgType(name string, pos int, wantKind string, got value.Kind) error {
	return fmt.Errorf("ERROR: argument %d to `%s` must be a %s, got %s", pos, name, wantKind, got)
}

func init() {
	register("core",
		&value.NativeFn{Name: "len", Arity: 1, Fn: lenFn},
		&value.NativeFn{Name: "as_char", Arity: 1, Fn: asChar},
		&value.NativeFn{Name: "as_string", Arity: 1, Fn: asString},
	)
}

// lenFn returns a string's codepoint count or an array's fixed size.
//
// Syntax: len(x)
func lenFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("len", 1, len(args))
	}
	switch args[0].Kind {
	case value.KindString:
		return value.Number(float64(args[0].Str.Len())), nil
	case value.KindArray:
		return value.Number(float64(len(args[0].Array.Elems))), nil
	default:
		return value.Nil, badArgType("len", 1, "string or array", args[0].Kind)
	}
}

// asChar converts a numeric codepoint to a length-1 string.
//
// Syntax: as_char(n)
func asChar(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("as_char", 1, len(args))
	}
	if args[0].Kind != value.KindNumber {
		return value.Nil, badArgType("as_char", 1, "number", args[0].Kind)
	}
	return value.String(string(rune(int32(args[0].Number)))), nil
}

// asString renders x as its textual form: identity on strings, the
// character itself for a length-1 string, and the canonical decimal
// rendering for a number.
//
// Syntax: as_string(x)
func asString(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("as_string", 1, len(args))
	}
	switch args[0].Kind {
	case value.KindString:
		return args[0], nil
	case value.KindNumber:
		return value.String(value.FormatNumber(args[0].Number)), nil
	default:
		return value.Nil, badArgType("as_string", 1, "string or number", args[0].Kind)
	}
}
