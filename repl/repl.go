/*
File    : gomixlite/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Language.
The REPL provides an interactive environment where users can:
- Enter source line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and shares a single eval.Evaluator (and its global environment.Context)
across every line, so `VAR` bindings from one line survive into the next,
exactly as spec.md §6 describes for the CLI shell.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomixlite/eval"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
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

// New creates and initializes a new Repl instance.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to GoMixLite!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print the banner, then read one line at
// a time via readline, feeding each into the same Evaluator/global Context
// until '.exit', Ctrl+D, or a readline error ends the session.
func (r *Repl) Start(io_ eval.IOHost, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(io_)

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

		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery runs one line through the evaluator's lex/parse/eval
// pipeline, printing the result or rendered error. Unlike file execution
// mode, the REPL continues running after any error so the user can correct
// their input and retry (spec.md §6: "Runtime and parse errors never abort
// the shell").
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	value, err := evaluator.Run("<stdin>", line, evaluator.Global)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.AsString())
		return
	}
	if value != nil {
		yellowColor.Fprintf(writer, "%s\n", value.ToString())
	}
}
