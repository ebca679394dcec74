/*
File    : mixvm/vm/vm.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package vm executes compiled chunk.Chunk bytecode: a value stack, a call
stack of frames, a name-keyed globals table, and an output sink. The
dispatch loop is a single switch over the current instruction's opcode,
in the style of a classic bytecode interpreter.
*/
package vm

import (
	"io"

	"github.com/akashmaji946/mixvm/chunk"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/value"
)

// DefaultMaxCallDepth is used when a caller does not configure one
// explicitly; it equals the minimum recursion depth mixvm programs are
// expected to reach (see config.DefaultMaxCallDepth).
const DefaultMaxCallDepth = 256

// VM is a single mixvm execution context. Globals persist across
// repeated calls to Run on the same VM, which is how the REPL keeps
// variables and functions alive between lines.
type VM struct {
	stack   []value.Value
	frames  []frame
	Globals map[string]value.Value
	Out     io.Writer

	maxCallDepth int
}

// New returns a VM that writes Print output to out and allows up to
// maxCallDepth nested function calls (the top-level script frame is not
// counted). A maxCallDepth of 0 uses DefaultMaxCallDepth.
func New(out io.Writer, maxCallDepth int) *VM {
	if maxCallDepth <= 0 {
		maxCallDepth = DefaultMaxCallDepth
	}
	return &VM{
		Globals:      make(map[string]value.Value),
		Out:          out,
		maxCallDepth: maxCallDepth,
	}
}

// Run executes ch as the top-level script, wrapping it as an anonymous
// function so the ordinary call-frame machinery applies uniformly. Each
// call starts from a fresh, empty value stack and call-frame stack with
// base 0 - Run does not assume it is the first call on this VM, since the
// REPL and the TCP server both reuse one VM across many top-level runs to
// keep Globals alive between them. It returns the value left on the stack
// by the script's final return, if any, or the first runtime error
// encountered; on success it leaves the stack empty again before
// returning.
func (m *VM) Run(ch *chunk.Chunk) (value.Value, error) {
	m.stack = m.stack[:0]
	m.frames = m.frames[:0]

	script := &value.Function{Name: "<script>", Arity: 0, Chunk: ch}
	m.push(value.FunctionValue(script))
	m.frames = append(m.frames, frame{chunk: ch, ip: 0, base: 0})

	if err := m.run(); err != nil {
		return value.Nil, err
	}
	if len(m.stack) == 0 {
		return value.Nil, nil
	}
	result := m.stack[len(m.stack)-1]
	m.stack = m.stack[:0]
	return result, nil
}

func (m *VM) push(v value.Value) {
	m.stack = append(m.stack, v)
}

func (m *VM) pop() value.Value {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

func (m *VM) peek(distance int) value.Value {
	return m.stack[len(m.stack)-1-distance]
}

func (m *VM) curFrame() *frame {
	return &m.frames[len(m.frames)-1]
}

func (m *VM) runtimeErr(pos langerr.Position, format string, args ...interface{}) error {
	return langerr.New(langerr.Runtime, pos, format, args...)
}

// run drives the dispatch loop until the outermost frame returns.
func (m *VM) run() error {
	for {
		f := m.curFrame()
		if f.ip >= len(f.chunk.Code) {
			return m.runtimeErr(f.chunk.PosAt(f.ip-1), "instruction pointer ran off the end of the chunk")
		}
		op := chunk.OpCode(f.chunk.Code[f.ip])
		pos := f.chunk.PosAt(f.ip)
		f.ip++

		switch op {
		case chunk.OpConstNil:
			m.push(value.Nil)

		case chunk.OpConstBool:
			b := f.chunk.Code[f.ip]
			f.ip++
			m.push(value.Bool(b != 0))

		case chunk.OpConstNum, chunk.OpConst:
			idx := f.chunk.ReadUint16(f.ip)
			f.ip += 2
			m.push(f.chunk.Constants[idx])

		case chunk.OpPop:
			m.pop()

		case chunk.OpPrint:
			v := m.pop()
			io.WriteString(m.Out, value.Print(v)+"\n")

		case chunk.OpAdd:
			if err := m.execAdd(pos); err != nil {
				return err
			}
		case chunk.OpSub:
			if err := m.execNumeric(pos, func(a, b float64) float64 { return a - b }); err != nil {
				return err
			}
		case chunk.OpMul:
			if err := m.execNumeric(pos, func(a, b float64) float64 { return a * b }); err != nil {
				return err
			}
		case chunk.OpDiv:
			if err := m.execDiv(pos); err != nil {
				return err
			}
		case chunk.OpNeg:
			if err := m.execNeg(pos); err != nil {
				return err
			}
		case chunk.OpNot:
			if err := m.execNot(pos); err != nil {
				return err
			}
		case chunk.OpEq:
			b, a := m.pop(), m.pop()
			m.push(value.Bool(value.Equal(a, b)))
		case chunk.OpLt:
			if err := m.execCompare(pos, func(a, b float64) bool { return a < b }); err != nil {
				return err
			}
		case chunk.OpLe:
			if err := m.execCompare(pos, func(a, b float64) bool { return a <= b }); err != nil {
				return err
			}
		case chunk.OpGt:
			if err := m.execCompare(pos, func(a, b float64) bool { return a > b }); err != nil {
				return err
			}
		case chunk.OpGe:
			if err := m.execCompare(pos, func(a, b float64) bool { return a >= b }); err != nil {
				return err
			}

		case chunk.OpJump:
			off := int16(f.chunk.ReadUint16(f.ip))
			f.ip += 2
			f.ip += int(off)

		case chunk.OpJumpIfZero:
			off := int16(f.chunk.ReadUint16(f.ip))
			f.ip += 2
			cond := m.pop()
			if !cond.IsTruthy() {
				f.ip += int(off)
			}

		case chunk.OpLoadGlobal:
			idx := f.chunk.ReadUint16(f.ip)
			f.ip += 2
			name := f.chunk.Constants[idx].Str.Text
			v, ok := m.Globals[name]
			if !ok {
				return m.runtimeErr(pos, "undefined variable %q", name)
			}
			m.push(v)

		case chunk.OpStoreGlobal:
			idx := f.chunk.ReadUint16(f.ip)
			f.ip += 2
			name := f.chunk.Constants[idx].Str.Text
			m.Globals[name] = m.peek(0)

		case chunk.OpLoadLocal:
			slot := f.chunk.ReadUint16(f.ip)
			f.ip += 2
			m.push(m.stack[f.base+int(slot)])

		case chunk.OpStoreLocal:
			slot := f.chunk.ReadUint16(f.ip)
			f.ip += 2
			m.stack[f.base+int(slot)] = m.peek(0)

		case chunk.OpArray:
			init := m.pop()
			size := m.pop()
			if size.Kind != value.KindNumber {
				return m.runtimeErr(pos, "array size must be a number")
			}
			n := int(size.Number)
			if n < 0 {
				return m.runtimeErr(pos, "array size must not be negative")
			}
			m.push(value.ArrayValue(value.NewArray(n, init)))

		case chunk.OpLoadIndex:
			if err := m.execLoadIndex(pos); err != nil {
				return err
			}

		case chunk.OpStoreIndex:
			if err := m.execStoreIndex(pos); err != nil {
				return err
			}

		case chunk.OpCall:
			arity := int(f.chunk.Code[f.ip])
			f.ip++
			if err := m.execCall(pos, arity); err != nil {
				return err
			}

		case chunk.OpReturn:
			result := m.pop()
			done, err := m.execReturn(result)
			if err != nil {
				return err
			}
			if done {
				return nil
			}

		default:
			return m.runtimeErr(pos, "unknown opcode %d", op)
		}
	}
}
