/*
File    : mixvm/natives/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Grounded on the teacher's std/strings.go, trimmed to the subset that
makes sense without the teacher's implicit stringification (ToString) --
mixvm's natives are explicit about which Value Kinds they accept.
*/
package natives

import (
	"strings"

	"github.com/akashmaji946/mixvm/value"
)

func init() {
	register("string",
		&value.NativeFn{Name: "upper", Arity: 1, Fn: strUpper},
		&value.NativeFn{Name: "lower", Arity: 1, Fn: strLower},
		&value.NativeFn{Name: "trim", Arity: 1, Fn: strTrim},
		&value.NativeFn{Name: "split_len", Arity: 2, Fn: strSplitLen},
	)
}

func strArg(name string, args []value.Value, i int) (string, error) {
	if args[i].Kind != value.KindString {
		return "", badArgType(name, i+1, "string", args[i].Kind)
	}
	return args[i].Str.Text, nil
}

// upper returns s with every letter mapped to its upper case form.
//
// Syntax: upper(s)
func strUpper(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("upper", 1, len(args))
	}
	s, err := strArg("upper", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.String(strings.ToUpper(s)), nil
}

// lower returns s with every letter mapped to its lower case form.
//
// Syntax: lower(s)
func strLower(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("lower", 1, len(args))
	}
	s, err := strArg("lower", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.String(strings.ToLower(s)), nil
}

// trim removes leading and trailing whitespace from s.
//
// Syntax: trim(s)
func strTrim(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("trim", 1, len(args))
	}
	s, err := strArg("trim", args, 0)
	if err != nil {
		return value.Nil, err
	}
	return value.String(strings.TrimSpace(s)), nil
}

// split_len splits s into an array of substrings each at most n
// codepoints long, the last chunk possibly shorter.
//
// Syntax: split_len(s, n)
func strSplitLen(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("split_len", 2, len(args))
	}
	s, err := strArg("split_len", args, 0)
	if err != nil {
		return value.Nil, err
	}
	if args[1].Kind != value.KindNumber {
		return value.Nil, badArgType("split_len", 2, "number", args[1].Kind)
	}
	n := int(args[1].Number)
	if n <= 0 {
		return value.Nil, badArgType("split_len", 2, "positive number", args[1].Kind)
	}

	runes := []rune(s)
	var chunks []value.Value
	for i := 0; i < len(runes); i += n {
		end := i + n
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, value.String(string(runes[i:end])))
	}
	return value.ArrayValue(&value.Array{Elems: chunks}), nil
}
