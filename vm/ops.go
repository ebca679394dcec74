/*
File    : mixvm/vm/ops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package vm

import (
	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/value"
)

func (m *VM) execAdd(pos langerr.Position) error {
	b, a := m.pop(), m.pop()
	switch {
	case a.Kind == value.KindNumber && b.Kind == value.KindNumber:
		m.push(value.Number(a.Number + b.Number))
	case a.Kind == value.KindString && b.Kind == value.KindString:
		m.push(value.String(a.Str.Text + b.Str.Text))
	default:
		return m.runtimeErr(pos, "operator + requires two numbers or two strings, got %s and %s", a.Kind, b.Kind)
	}
	return nil
}

func (m *VM) execNumeric(pos langerr.Position, op func(a, b float64) float64) error {
	b, a := m.pop(), m.pop()
	if a.Kind != value.KindNumber || b.Kind != value.KindNumber {
		return m.runtimeErr(pos, "operator requires two numbers, got %s and %s", a.Kind, b.Kind)
	}
	m.push(value.Number(op(a.Number, b.Number)))
	return nil
}

func (m *VM) execDiv(pos langerr.Position) error {
	b, a := m.pop(), m.pop()
	if a.Kind != value.KindNumber || b.Kind != value.KindNumber {
		return m.runtimeErr(pos, "operator / requires two numbers, got %s and %s", a.Kind, b.Kind)
	}
	if b.Number == 0 {
		return m.runtimeErr(pos, "division by zero")
	}
	m.push(value.Number(a.Number / b.Number))
	return nil
}

func (m *VM) execNeg(pos langerr.Position) error {
	a := m.pop()
	if a.Kind != value.KindNumber {
		return m.runtimeErr(pos, "unary - requires a number, got %s", a.Kind)
	}
	m.push(value.Number(-a.Number))
	return nil
}

func (m *VM) execNot(pos langerr.Position) error {
	a := m.pop()
	switch a.Kind {
	case value.KindBool:
		m.push(value.Bool(!a.Bool))
	case value.KindNil:
		m.push(value.Bool(true))
	default:
		return m.runtimeErr(pos, "unary ! requires a bool or nil, got %s", a.Kind)
	}
	return nil
}

func (m *VM) execCompare(pos langerr.Position, op func(a, b float64) bool) error {
	b, a := m.pop(), m.pop()
	if a.Kind != value.KindNumber || b.Kind != value.KindNumber {
		return m.runtimeErr(pos, "comparison requires two numbers, got %s and %s", a.Kind, b.Kind)
	}
	m.push(value.Bool(op(a.Number, b.Number)))
	return nil
}

func (m *VM) execLoadIndex(pos langerr.Position) error {
	target := m.pop()
	idx := m.pop()
	if idx.Kind != value.KindNumber {
		return m.runtimeErr(pos, "index must be a number")
	}
	i := int(idx.Number)
	switch target.Kind {
	case value.KindArray:
		if i < 0 || i >= len(target.Array.Elems) {
			return m.runtimeErr(pos, "array index %d out of bounds (length %d)", i, len(target.Array.Elems))
		}
		m.push(target.Array.Elems[i])
	case value.KindString:
		runes := target.Str.Runes()
		if i < 0 || i >= len(runes) {
			return m.runtimeErr(pos, "string index %d out of bounds (length %d)", i, len(runes))
		}
		m.push(value.String(string(runes[i])))
	default:
		return m.runtimeErr(pos, "value of type %s is not indexable", target.Kind)
	}
	return nil
}

// execStoreIndex expects the stack, top to bottom, as [value, target, idx]
// (idx was compiled first, then target, then the value to store) and
// leaves only the stored value on the stack afterward, so index
// assignment can itself be used as an expression.
func (m *VM) execStoreIndex(pos langerr.Position) error {
	val := m.pop()
	target := m.pop()
	idx := m.pop()
	if idx.Kind != value.KindNumber {
		return m.runtimeErr(pos, "index must be a number")
	}
	i := int(idx.Number)
	switch target.Kind {
	case value.KindArray:
		if i < 0 || i >= len(target.Array.Elems) {
			return m.runtimeErr(pos, "array index %d out of bounds (length %d)", i, len(target.Array.Elems))
		}
		target.Array.Elems[i] = val
	case value.KindString:
		return m.runtimeErr(pos, "strings are immutable")
	default:
		return m.runtimeErr(pos, "value of type %s is not indexable", target.Kind)
	}
	m.push(val)
	return nil
}

// execCall implements the Call opcode for both user functions and native
// functions. The callee sits at stack position top-arity, with its
// arguments directly above it.
func (m *VM) execCall(pos langerr.Position, arity int) error {
	calleeIdx := len(m.stack) - 1 - arity
	callee := m.stack[calleeIdx]

	switch callee.Kind {
	case value.KindFunction:
		fn := callee.Fn
		if fn.Arity != arity {
			return m.runtimeErr(pos, "function %q expects %d argument(s), got %d", fn.Name, fn.Arity, arity)
		}
		// The top-level script frame pushed by Run is not counted, so
		// maxCallDepth bounds the number of nested function calls.
		if len(m.frames) > m.maxCallDepth {
			return m.runtimeErr(pos, "call stack exceeded maximum depth of %d", m.maxCallDepth)
		}
		ch, ok := fn.Chunk.(*chunk.Chunk)
		if !ok {
			return m.runtimeErr(pos, "function %q has no compiled body", fn.Name)
		}
		m.frames = append(m.frames, frame{chunk: ch, ip: 0, base: calleeIdx})
		return nil

	case value.KindNative:
		nf := callee.Native
		if nf.Arity >= 0 && nf.Arity != arity {
			return m.runtimeErr(pos, "native %q expects %d argument(s), got %d", nf.Name, nf.Arity, arity)
		}
		args := make([]value.Value, arity)
		copy(args, m.stack[calleeIdx+1:])
		result, err := nf.Fn(args)
		if err != nil {
			return m.runtimeErr(pos, "%s", err.Error())
		}
		m.stack = m.stack[:calleeIdx]
		m.push(result)
		return nil

	default:
		return m.runtimeErr(pos, "value of type %s is not callable", callee.Kind)
	}
}

// execReturn pops the current frame, truncates the stack to its base, and
// pushes the return value. It reports whether the VM has reached the end
// of the outermost frame and should halt.
func (m *VM) execReturn(result value.Value) (bool, error) {
	f := m.curFrame()
	base := f.base
	m.frames = m.frames[:len(m.frames)-1]
	m.stack = m.stack[:base]
	m.push(result)
	return len(m.frames) == 0, nil
}
