/*
File    : mixvm/cmd/mixvm/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the mixvm interpreter. It provides
three modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop
 2. File mode: execute a mixvm source file given as the first argument
 3. Server mode: host a REPL over TCP, one session per connection

The interpreter uses a lexer -> parser -> compiler -> VM pipeline to
process mixvm source.
*/
package main

import (
	"context"
	"io"
	"net"
	"os"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/akashmaji946/mixvm/compiler"
	"github.com/akashmaji946/mixvm/config"
	"github.com/akashmaji946/mixvm/natives"
	"github.com/akashmaji946/mixvm/parser"
	"github.com/akashmaji946/mixvm/repl"
	"github.com/akashmaji946/mixvm/value"
	"github.com/akashmaji946/mixvm/vm"
)

// Color definitions for file execution and CLI output.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the mixvm interpreter.
//
// Usage:
//
//	mixvm                       - start in REPL (interactive) mode
//	mixvm <filename>            - execute the specified mixvm source file
//	mixvm server <port>         - start a REPL server on the given port
//	mixvm --help                - display help information
//	mixvm --version             - display version information
//
// Every mode accepts an optional "-config <path>" pair pointing
// at a YAML configuration file (see config.Load); without it mixvm runs
// against config.Default().
func main() {
	args := os.Args[1:]

	cfgPath, args := extractConfigFlag(args)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] could not load %q: %v\n", cfgPath, err)
		os.Exit(1)
	}

	if len(args) == 0 {
		startRepl(cfg, os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion(cfg)
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: mixvm server <port>\n")
			os.Exit(1)
		}
		startServer(cfg, args[1])
	default:
		runFile(cfg, args[0])
	}
}

// extractConfigFlag pulls the first "-config <path>" pair, wherever it
// appears in args, and returns the path (or "" if absent) plus the
// remaining arguments.
func extractConfigFlag(args []string) (string, []string) {
	for i, a := range args {
		if a == "-config" && i+1 < len(args) {
			rest := append(append([]string{}, args[:i]...), args[i+2:]...)
			return args[i+1], rest
		}
	}
	return "", args
}

func showHelp() {
	cyanColor.Println("mixvm - A Bytecode-Compiled Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mixvm                      Start interactive REPL mode")
	yellowColor.Println("  mixvm <path-to-file>       Execute a mixvm file (.mx)")
	yellowColor.Println("  mixvm server <port>        Start REPL server on specified port")
	yellowColor.Println("  mixvm -config <path> ...   Load a YAML configuration file")
	yellowColor.Println("  mixvm --help               Display this help message")
	yellowColor.Println("  mixvm --version            Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  mixvm                      # Start REPL")
	yellowColor.Println("  mixvm samples/factorial.mx")
	yellowColor.Println("  mixvm server 8080          # Start REPL server on port 8080")
}

func showVersion(cfg *config.Config) {
	cyanColor.Println("mixvm - A Bytecode-Compiled Scripting Language")
	cyanColor.Printf("Version: %s\n", cfg.REPL.Version)
	cyanColor.Printf("License: %s\n", cfg.REPL.License)
	cyanColor.Printf("Author : %s\n", cfg.REPL.Author)
}

// newVM builds a VM wired to the native groups and recursion limit named
// by cfg, writing Print output to out.
func newVM(cfg *config.Config, out io.Writer) *vm.VM {
	machine := vm.New(out, cfg.MaxCallDepth)
	for name, fn := range natives.Globals(cfg.EnabledNatives) {
		machine.Globals[name] = fn
	}
	return machine
}

func startRepl(cfg *config.Config, in *os.File, out *os.File) {
	machine := newVM(cfg, out)
	r := repl.NewRepl(cfg.REPL.Banner, cfg.REPL.Version, cfg.REPL.Author, config.Line(), cfg.REPL.License, cfg.REPL.Prompt, machine)
	r.Start(in, out)
}

// runFile reads and executes a mixvm source file.
func runFile(cfg *config.Config, fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(cfg, string(source))
}

// executeFileWithRecovery parses, compiles and runs source, recovering
// from any panic and reporting it as a runtime error before exiting
// non-zero.
func executeFileWithRecovery(cfg *config.Config, source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	program, err := parser.NewParser(source).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	ch, err := compiler.Compile(program)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	machine := newVM(cfg, os.Stdout)
	result, err := machine.Run(ch)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if result.Kind != value.KindNil {
		yellowColor.Fprintf(os.Stdout, "%s\n", value.Print(result))
	}
}

// startServer listens on port, handing each accepted connection its own
// VM and REPL session. Connection handlers run as goroutines of an
// errgroup that startServer waits on. Accept errors are logged and the
// loop keeps accepting; the errgroup does not recover a panic inside a
// handler.
func startServer(cfg *config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("mixvm REPL server listening on :%s\n", port)

	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
				continue
			}
			group.Go(func() error {
				handleClient(cfg, conn)
				return nil
			})
		}
	})

	if err := group.Wait(); err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
		os.Exit(1)
	}
}

// handleClient drives one REPL session over a client connection, each
// with its own VM so sessions never share globals.
func handleClient(cfg *config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())

	machine := newVM(cfg, conn)
	r := repl.NewRepl(cfg.REPL.Banner, cfg.REPL.Version, cfg.REPL.Author, config.Line(), cfg.REPL.License, cfg.REPL.Prompt, machine)
	r.Start(conn, conn)

	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
