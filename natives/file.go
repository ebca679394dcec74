/*
File    : mixvm/natives/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Grounded on the teacher's file/file.go: fopen/fclose/fread/fwrite over an
OS file handle. Where the teacher represents the handle as a dedicated
FileObject type in its interface-based object hierarchy, mixvm represents
it as a Value{Kind: KindHandle} wrapping *os.File, consistent with the
tagged-variant Value model (see value package docs).
*/
package natives

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/mixvm/value"
)

func init() {
	register("file",
		&value.NativeFn{Name: "fopen", Arity: 2, Fn: fileOpen},
		&value.NativeFn{Name: "fclose", Arity: 1, Fn: fileClose},
		&value.NativeFn{Name: "fread", Arity: 2, Fn: fileRead},
		&value.NativeFn{Name: "fwrite", Arity: 2, Fn: fileWrite},
	)
}

func asFile(name string, v value.Value) (*os.File, error) {
	if v.Kind != value.KindHandle {
		return nil, badArgType(name, 1, "handle", v.Kind)
	}
	if v.Handle.Closed {
		return nil, fmt.Errorf("ERROR: `%s` used after the handle was closed", name)
	}
	f, ok := v.Handle.Res.(*os.File)
	if !ok {
		return nil, fmt.Errorf("ERROR: `%s` requires a file handle", name)
	}
	return f, nil
}

// fopen opens path in the given mode ("r", "w", "a", or "r+") and returns
// a handle value.
//
// Syntax: fopen(path, mode)
func fileOpen(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("fopen", 2, len(args))
	}
	path, err := strArg("fopen", args, 0)
	if err != nil {
		return value.Nil, err
	}
	mode, err := strArg("fopen", args, 1)
	if err != nil {
		return value.Nil, err
	}

	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	default:
		return value.Nil, fmt.Errorf("ERROR: invalid file mode %q", mode)
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return value.Nil, fmt.Errorf("ERROR: could not open file %q: %v", path, err)
	}
	return value.HandleValue(&value.Handle{Label: path, Res: f}), nil
}

// fclose releases the handle returned by fopen.
//
// Syntax: fclose(h)
func fileClose(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Nil, wrongArity("fclose", 1, len(args))
	}
	f, err := asFile("fclose", args[0])
	if err != nil {
		return value.Nil, err
	}
	args[0].Handle.Closed = true
	if err := f.Close(); err != nil {
		return value.Nil, fmt.Errorf("ERROR: could not close file: %v", err)
	}
	return value.Nil, nil
}

// fread reads up to n bytes from the handle and returns them as a string.
//
// Syntax: fread(h, n)
func fileRead(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("fread", 2, len(args))
	}
	f, err := asFile("fread", args[0])
	if err != nil {
		return value.Nil, err
	}
	if args[1].Kind != value.KindNumber {
		return value.Nil, badArgType("fread", 2, "number", args[1].Kind)
	}
	buf := make([]byte, int(args[1].Number))
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return value.Nil, fmt.Errorf("ERROR: could not read file: %v", err)
	}
	return value.String(string(buf[:n])), nil
}

// fwrite writes s to the handle and returns the number of bytes written.
//
// Syntax: fwrite(h, s)
func fileWrite(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Nil, wrongArity("fwrite", 2, len(args))
	}
	f, err := asFile("fwrite", args[0])
	if err != nil {
		return value.Nil, err
	}
	s, err := strArg("fwrite", args, 1)
	if err != nil {
		return value.Nil, err
	}
	n, err := f.WriteString(s)
	if err != nil {
		return value.Nil, fmt.Errorf("ERROR: could not write file: %v", err)
	}
	return value.Number(float64(n)), nil
}
