/*
File    : mixvm/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mixvm/vm"
)

func TestRepl_PersistsGlobalsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	machine := vm.New(&out, 0)
	r := NewRepl("BANNER", "v0", "tester", "----", "MIT", "mixvm >>> ", machine)

	in := strings.NewReader("let x = 40;\nprint x + 2;\n.exit\n")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "42")
}

func TestRepl_ReportsParseErrorsWithoutExiting(t *testing.T) {
	var out bytes.Buffer
	machine := vm.New(&out, 0)
	r := NewRepl("BANNER", "v0", "tester", "----", "MIT", "mixvm >>> ", machine)

	in := strings.NewReader("let = ;\nprint 1 + 1;\n.exit\n")
	r.Start(in, &out)

	assert.Contains(t, out.String(), "2")
}
