// Command cclox is a tree-walking interpreter for the Lox language: run it
// with a script path to execute a file, or with no arguments to open a REPL.
package main

import (
	"bufio"
	"fmt"
	"os"

	"cclox/diagnostics"
	"cclox/interpreter"
	"cclox/run"
)

// sysexits-style exit codes, per the CLI contract.
const (
	exitSuccess    = 0
	exitUsage      = 64
	exitDataErr    = 65
	exitNoInput    = 66
	exitRuntimeErr = 70
	exitIOErr      = 74
)

func main() {
	os.Exit(mainReturningExitCode())
}

func mainReturningExitCode() int {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: cclox [script]")
		return exitUsage
	}
	if len(args) == 1 {
		return runFile(args[0])
	}
	return runPrompt()
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Can't open file '%s'.\n", path)
			return exitNoInput
		}
		fmt.Fprintf(os.Stderr, "Failed to read file '%s': %v\n", path, err)
		return exitIOErr
	}

	diags := diagnostics.New(os.Stdout)
	interp := interpreter.New(os.Stdout)
	run.Source(string(source), os.Stdout, interp, diags)

	if diags.HadError {
		return exitDataErr
	}
	if diags.HadRuntimeError {
		return exitRuntimeErr
	}
	return exitSuccess
}

func runPrompt() int {
	diags := diagnostics.New(os.Stdout)
	interp := interpreter.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return exitSuccess
		}
		run.Source(scanner.Text(), os.Stdout, interp, diags)
		diags.Reset()
	}
}
