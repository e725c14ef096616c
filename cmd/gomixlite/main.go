/*
File    : gomixlite/cmd/gomixlite/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the GoMixLite interpreter. It provides
three modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop
 2. File mode: execute a GoMixLite source file from the command line
 3. Server mode: a TCP REPL server, one independent session per connection

The interpreter uses a lexer-parser-evaluator pipeline (packages lexer,
parser, eval) to process GoMixLite source; this binary only ever sees the
three-kind errs.Error/object.Object surface the core exposes.
*/
package main

import (
	"os"

	"github.com/akashmaji946/gomixlite/eval"
	"github.com/akashmaji946/gomixlite/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the GoMixLite interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "gomixlite >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ____       __  __ _       _     _ _
  / ___| ___ |  \/  (_)_  __| |   (_) |_ ___
 | |  _ / _ \| |\/| | \ \/ /| |   | | __/ _ \
 | |_| | (_) | |  | | |>  < | |___| | ||  __/
  \____|\___/|_|  |_|_/_/\_\|_____|_|\__\___|
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches on the first CLI argument:
//
//	gomixlite              - start REPL (interactive) mode
//	gomixlite <filename>   - execute the named source file
//	gomixlite server <port> - start a TCP REPL server
//	gomixlite --help        - display help information
//	gomixlite --version     - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: gomixlite server <port>\n")
				os.Exit(1)
			}
			serve(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(newStreamHost(os.Stdin, os.Stdout), os.Stdout)
}

func showHelp() {
	cyanColor.Println("GoMixLite - a small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	color.Yellow("  gomixlite                    Start interactive REPL mode")
	color.Yellow("  gomixlite <path-to-file>     Execute a GoMixLite file")
	color.Yellow("  gomixlite server <port>      Start REPL server on the given port")
	color.Yellow("  gomixlite --help             Display this help message")
	color.Yellow("  gomixlite --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	color.Yellow("  .exit                        Exit the REPL")
}

func showVersion() {
	cyanColor.Println("GoMixLite - a small interpreted scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a source file, printing its result (if any)
// or its rendered error, then exiting non-zero on failure, per spec.md
// §6's exit-code contract.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	host := newStreamHost(os.Stdin, os.Stdout)
	evaluator := eval.New(host)

	value, runErr := evaluator.Run(fileName, string(source), evaluator.Global)
	if runErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", runErr.AsString())
		os.Exit(1)
	}
	if value != nil {
		color.Yellow("%s", value.ToString())
	}
}
