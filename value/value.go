/*
File    : mixvm/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package value defines the runtime value representation of mixvm.

Unlike the interface-based object hierarchy used elsewhere in this
ecosystem (an interface with a method per type, dispatched virtually),
Value here is a single closed, tagged variant: a struct with a Kind tag
and one field per payload type. The VM's opcode dispatch loop switches on
Kind directly instead of calling through an interface, and there is no
subtype hierarchy to extend with new language-level types.
*/
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags which payload field of a Value is meaningful.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindFunction
	KindNative
	KindHandle
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindNative:
		return "native"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Chunk is implemented by chunk.Chunk. The value package cannot import
// chunk directly (chunk's constant pool holds Values), so a Function
// value holds this narrow interface instead of a concrete chunk pointer.
type Chunk interface{}

// Str is a shared, immutable string. It caches a rune view lazily so that
// codepoint indexing (the language indexes strings by Unicode codepoint,
// not by byte) and len() do not re-decode the UTF-8 text on every access.
type Str struct {
	Text  string
	runes []rune
}

// NewStr wraps a Go string as a shared mixvm string value payload.
func NewStr(s string) *Str {
	return &Str{Text: s}
}

// Runes returns (and memoizes) the codepoint view of the string.
func (s *Str) Runes() []rune {
	if s.runes == nil {
		s.runes = []rune(s.Text)
		if len(s.runes) == 0 {
			s.runes = []rune{}
		}
	}
	return s.runes
}

// Len returns the string's length in Unicode codepoints.
func (s *Str) Len() int {
	return len(s.Runes())
}

// Array is a shared, mutable, fixed-size sequence of Values. Its length is
// fixed at allocation time; indexed reads and writes are bounds-checked by
// the VM, not by Array itself.
type Array struct {
	Elems []Value
}

// NewArray allocates an array of the given size, every slot initialized to
// init.
func NewArray(size int, init Value) *Array {
	elems := make([]Value, size)
	for i := range elems {
		elems[i] = init
	}
	return &Array{Elems: elems}
}

// Function is a shared reference to a compiled function: its chunk, its
// declared arity, and a display name used in diagnostics and in the
// debug-style rendering of a function value.
type Function struct {
	Name   string
	Arity  int
	Chunk  Chunk
}

// NativeFn is a host-provided callable exposed to mixvm programs as a
// first-class value.
type NativeFn struct {
	Name  string
	Arity int // -1 means variadic
	Fn    func(args []Value) (Value, error)
}

// Handle wraps an opaque host resource (an open file, for instance) so it
// can be passed around as an ordinary mixvm value without the language
// having any literal syntax for it. Closed is set once the resource has
// been released, so a native can reject use-after-close.
type Handle struct {
	Label  string
	Res    interface{}
	Closed bool
}

// Value is the tagged variant every mixvm runtime value is represented as.
type Value struct {
	Kind   Kind
	Bool   bool
	Number float64
	Str    *Str
	Array  *Array
	Fn     *Function
	Native *NativeFn
	Handle *Handle
}

// Nil is the canonical nil value.
var Nil = Value{Kind: KindNil}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Number constructs a numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Number: n}
}

// String constructs a string value from a Go string.
func String(s string) Value {
	return Value{Kind: KindString, Str: NewStr(s)}
}

// StringFromStr wraps an existing shared *Str without copying its text.
func StringFromStr(s *Str) Value {
	return Value{Kind: KindString, Str: s}
}

// ArrayValue wraps a shared *Array as a Value.
func ArrayValue(a *Array) Value {
	return Value{Kind: KindArray, Array: a}
}

// FunctionValue wraps a shared *Function as a Value.
func FunctionValue(f *Function) Value {
	return Value{Kind: KindFunction, Fn: f}
}

// NativeValue wraps a *NativeFn as a Value.
func NativeValue(n *NativeFn) Value {
	return Value{Kind: KindNative, Native: n}
}

// HandleValue wraps a *Handle as a Value.
func HandleValue(h *Handle) Value {
	return Value{Kind: KindHandle, Handle: h}
}

// IsTruthy implements the language's notion of truthiness, used by
// JumpIfZero: false, nil, and numeric zero are falsy; everything else
// (including the empty string and a zero-length array) is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number != 0
	default:
		return true
	}
}

// Equal reports whether two values are equal under the language's `==`
// semantics: same Kind required, numbers by IEEE equality, strings by
// codepoint-equal text, booleans by identity, nil to nil is true, and
// arrays/functions/natives by reference identity.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str.Text == b.Str.Text
	case KindArray:
		return a.Array == b.Array
	case KindFunction:
		return a.Fn == b.Fn
	case KindNative:
		return a.Native == b.Native
	case KindHandle:
		return a.Handle == b.Handle
	default:
		return false
	}
}

// FormatNumber renders a float64 the way `print` does: integer-valued
// numbers render without a trailing fractional part; everything else uses
// the shortest round-tripping decimal form.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Print renders a Value the way the `print` statement does: numbers via
// FormatNumber, strings unquoted, booleans as true/false, nil as nil, and
// arrays/functions/natives as debug-style tags (the language has no
// literal syntax to reproduce them).
func Print(v Value) string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return FormatNumber(v.Number)
	case KindString:
		return v.Str.Text
	case KindArray:
		parts := make([]string, len(v.Array.Elems))
		for i, e := range v.Array.Elems {
			parts[i] = Print(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunction:
		return fmt.Sprintf("<fn %s>", v.Fn.Name)
	case KindNative:
		return fmt.Sprintf("<native %s>", v.Native.Name)
	case KindHandle:
		return fmt.Sprintf("<handle %s>", v.Handle.Label)
	default:
		return "<?>"
	}
}
