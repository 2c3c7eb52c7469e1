/*
File    : gomix-lite/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the GoMix-Lite
interpreter. The REPL provides an interactive environment where users
can enter source one line at a time, see immediate results, and
navigate command history using arrow keys.

The REPL uses the readline library for enhanced line editing and
integrates with the lexer/parser/eval pipeline to execute each line
against one shared Evaluator, so `let` bindings and `func` declarations
persist across lines within a session.
*/
package repl

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/builtins"
	"github.com/akashmaji946/gomix-lite/eval"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/lexer"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/akashmaji946/gomix-lite/value"
)

// Color definitions for REPL output.
// - blueColor: decorative separators
// - yellowColor: expression results and version info
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

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoMix-Lite!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it displays the banner, reads lines
// via readline until '.exit' or EOF (Ctrl+D), and evaluates each line
// against one *eval.Evaluator, so declarations persist across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.NewEvaluator()
	ev.Writer = writer
	ev.Builtins = builtins.NewRegistry(writer, bufio.NewReader(reader))

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, ev)
	}
}

// evalLine tokenizes, parses, and evaluates a single line against ev,
// printing its result (unless Empty) or its error. The line's statements
// run directly in ev's current scope, so their bindings outlive the line.
func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator) {
	program, err := parseReplLine(line)
	if err != nil {
		printError(writer, err)
		return
	}

	var result value.Value = value.Empty{}
	for _, stmt := range program.Body {
		result, err = ev.Eval(stmt)
		if err != nil {
			printError(writer, err)
			return
		}
	}
	if result != nil && result.Kind() != value.EmptyKind {
		yellowColor.Fprintf(writer, "%s\n", result.Display())
	}
}

// parseReplLine parses line as a full program. A bare expression typed at
// the prompt (e.g. `1 + 2`, with no trailing `;`) is not a valid
// statement on its own, so if the first parse fails a `;` is appended and
// parsing is retried once, letting REPL users omit the terminator the
// file-mode grammar otherwise requires.
func parseReplLine(line string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(line)
	if err == nil {
		if program, perr := parser.Parse(tokens); perr == nil {
			return program, nil
		}
	}
	tokens, err = lexer.Tokenize(line + ";")
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// printError renders err in red: a RuntimeError prints its message and
// call stack, anything else (a LexError or ParseError) prints its plain
// message.
func printError(writer io.Writer, err error) {
	var rerr *langerr.RuntimeError
	if errors.As(err, &rerr) {
		redColor.Fprintf(writer, "%s", rerr.Format())
		return
	}
	redColor.Fprintf(writer, "%s\n", err.Error())
}
