/*
File    : mixvm/natives/natives_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package natives

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mixvm/value"
)

func call(t *testing.T, globals map[string]value.Value, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	v, ok := globals[name]
	require.True(t, ok, "native %q not registered", name)
	require.Equal(t, value.KindNative, v.Kind)
	return v.Native.Fn(args)
}

func TestGlobals_SkipsUnknownGroupSilently(t *testing.T) {
	g := Globals([]string{"core", "no-such-group"})
	_, ok := g["len"]
	assert.True(t, ok)
}

func TestCore_Len(t *testing.T) {
	g := Globals([]string{"core"})

	v, err := call(t, g, "len", value.String("héllo"))
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.Number)

	v, err = call(t, g, "len", value.ArrayValue(value.NewArray(3, value.Nil)))
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	_, err = call(t, g, "len", value.Number(1))
	assert.Error(t, err)
}

func TestCore_AsCharAndAsString(t *testing.T) {
	g := Globals([]string{"core"})

	v, err := call(t, g, "as_char", value.Number(65))
	require.NoError(t, err)
	assert.Equal(t, "A", v.Str.Text)

	v, err = call(t, g, "as_string", value.Number(3.5))
	require.NoError(t, err)
	assert.Equal(t, "3.5", v.Str.Text)

	v, err = call(t, g, "as_string", value.String("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Str.Text)
}

func TestMath_Group(t *testing.T) {
	g := Globals([]string{"math"})

	v, err := call(t, g, "sqrt", value.Number(9))
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	_, err = call(t, g, "sqrt", value.Number(-1))
	assert.Error(t, err)

	v, err = call(t, g, "pow", value.Number(2), value.Number(10))
	require.NoError(t, err)
	assert.Equal(t, float64(1024), v.Number)

	v, err = call(t, g, "floor", value.Number(3.7))
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	v, err = call(t, g, "ceil", value.Number(3.2))
	require.NoError(t, err)
	assert.Equal(t, float64(4), v.Number)

	v, err = call(t, g, "abs", value.Number(-5))
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.Number)

	v, err = call(t, g, "min", value.Number(3), value.Number(7))
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number)

	v, err = call(t, g, "max", value.Number(3), value.Number(7))
	require.NoError(t, err)
	assert.Equal(t, float64(7), v.Number)
}

func TestString_Group(t *testing.T) {
	g := Globals([]string{"string"})

	v, err := call(t, g, "upper", value.String("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", v.Str.Text)

	v, err = call(t, g, "lower", value.String("ABC"))
	require.NoError(t, err)
	assert.Equal(t, "abc", v.Str.Text)

	v, err = call(t, g, "trim", value.String("  hi  "))
	require.NoError(t, err)
	assert.Equal(t, "hi", v.Str.Text)

	v, err = call(t, g, "split_len", value.String("abcde"), value.Number(2))
	require.NoError(t, err)
	require.Equal(t, value.KindArray, v.Kind)
	require.Len(t, v.Array.Elems, 3)
	assert.Equal(t, "ab", v.Array.Elems[0].Str.Text)
	assert.Equal(t, "cd", v.Array.Elems[1].Str.Text)
	assert.Equal(t, "e", v.Array.Elems[2].Str.Text)
}

func TestArray_Group(t *testing.T) {
	g := Globals([]string{"array"})

	a := value.ArrayValue(&value.Array{Elems: []value.Value{value.Number(1), value.Number(2)}})
	v, err := call(t, g, "push_copy", a, value.Number(3))
	require.NoError(t, err)
	require.Len(t, v.Array.Elems, 3)
	assert.Equal(t, float64(3), v.Array.Elems[2].Number)
	assert.Len(t, a.Array.Elems, 2, "push_copy must not mutate its input")

	v, err = call(t, g, "index_of", a, value.Number(2))
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.Number)

	v, err = call(t, g, "index_of", a, value.Number(99))
	require.NoError(t, err)
	assert.Equal(t, float64(-1), v.Number)
}

func TestFile_Group_WriteReadClose(t *testing.T) {
	g := Globals([]string{"file"})
	path := filepath.Join(t.TempDir(), "scratch.txt")

	h, err := call(t, g, "fopen", value.String(path), value.String("w"))
	require.NoError(t, err)
	require.Equal(t, value.KindHandle, h.Kind)

	n, err := call(t, g, "fwrite", h, value.String("hello"))
	require.NoError(t, err)
	assert.Equal(t, float64(5), n.Number)

	_, err = call(t, g, "fclose", h)
	require.NoError(t, err)

	_, err = call(t, g, "fwrite", h, value.String("more"))
	assert.Error(t, err, "writing through a closed handle must fail")

	h2, err := call(t, g, "fopen", value.String(path), value.String("r"))
	require.NoError(t, err)

	r, err := call(t, g, "fread", h2, value.Number(5))
	require.NoError(t, err)
	assert.Equal(t, "hello", r.Str.Text)

	_, err = call(t, g, "fclose", h2)
	require.NoError(t, err)
}

func TestFile_Open_InvalidMode(t *testing.T) {
	g := Globals([]string{"file"})
	_, err := call(t, g, "fopen", value.String(filepath.Join(t.TempDir(), "x")), value.String("bogus"))
	assert.Error(t, err)
}

func TestFile_Open_MissingFileForRead(t *testing.T) {
	g := Globals([]string{"file"})
	_, err := call(t, g, "fopen", value.String(filepath.Join(t.TempDir(), "does-not-exist")), value.String("r"))
	assert.Error(t, err)
}
