/*
File    : gomix-lite/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the GoMix-Lite interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a GoMix-Lite source file from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process source.
*/
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-lite/eval"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/lexer"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/akashmaji946/gomix-lite/repl"
	"github.com/akashmaji946/gomix-lite/value"
)

// VERSION represents the current version of the GoMix-Lite interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "gomix-lite >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
    ▄▄▄▄                       ▄▄▄  ▄▄▄     ██
  ██▀▀▀▀█                      ███  ███     ▀▀
 ██         ▄████▄             ████████   ████     ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██     ██       ████
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██     ██       ▄██▄
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ▄▄▄██▄▄▄   ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ▀▀▀▀▀▀▀▀  ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the GoMix-Lite interpreter. It determines the
// operating mode based on command-line arguments:
//
// Usage:
//
//	gomix-lite              - Start in REPL (interactive) mode
//	gomix-lite <filename>   - Execute the specified source file
//	gomix-lite --help       - Display help information
//	gomix-lite --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the interpreter.
func showHelp() {
	cyanColor.Println("GoMix-Lite - An Interpreted Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomix-lite                    Start interactive REPL mode")
	yellowColor.Println("  gomix-lite <path-to-file>     Execute a GoMix-Lite file (.gm)")
	yellowColor.Println("  gomix-lite --help             Display this help message")
	yellowColor.Println("  gomix-lite --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                         Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  gomix-lite")
	yellowColor.Println("  gomix-lite samples/factorial.gm")
}

// showVersion displays the version information for the interpreter.
func showVersion() {
	cyanColor.Println("GoMix-Lite - An Interpreted Scripting Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a GoMix-Lite source file, printing the final
// expression's value (if any) to stdout and exiting non-zero on a lexer,
// parser, or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	tokens, err := lexer.Tokenize(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEX ERROR] %s\n", err)
		os.Exit(1)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	result, err := evaluator.Run(program)
	if err != nil {
		var rerr *langerr.RuntimeError
		if errors.As(err, &rerr) {
			redColor.Fprintf(os.Stderr, "%s", rerr.Format())
		} else {
			redColor.Fprintf(os.Stderr, "[ERROR] %s\n", err)
		}
		os.Exit(1)
	}

	if result != nil && result.Kind() != value.EmptyKind {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Display())
	}
}
