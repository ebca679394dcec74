/*
File    : mixvm/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for mixvm. The REPL
provides an interactive environment where users can:
- Enter mixvm code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing and drives
the same lex -> parse -> compile -> run pipeline used for file execution,
sharing a single *vm.VM across lines so globals and function declarations
persist for the life of the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/mixvm/compiler"
	"github.com/akashmaji946/mixvm/parser"
	"github.com/akashmaji946/mixvm/value"
	"github.com/akashmaji946/mixvm/vm"
)

// Color definitions for REPL output.
// - blueColor: decorative lines and separators
// - yellowColor: expression results
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one Read-Eval-Print Loop session. VM is shared across
// every line read in the session, so `let`-bound globals and function
// declarations from one line are visible in the next.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	VM      *vm.VM
}

// NewRepl creates a new REPL session bound to machine, which supplies the
// natives, recursion limit, and output writer already configured by the
// caller.
func NewRepl(banner, version, author, line, license, prompt string, machine *vm.VM) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, VM: machine}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to mixvm!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop over reader/writer. The loop continues
// until the user types '.exit', EOF is reached, or readline itself fails.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses, compiles and runs one line, recovering from
// any panic so a single bad line cannot bring down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, err := parser.NewParser(line).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	ch, err := compiler.Compile(program)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := r.VM.Run(ch)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result.Kind != value.KindNil {
		yellowColor.Fprintf(writer, "%s\n", value.Print(result))
	}
}
