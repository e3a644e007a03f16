// Package run wires the lexer, parser, resolver and interpreter into the
// single entry point both the file runner and the REPL use, mirroring the
// source's Lox::run.
package run

import (
	"io"

	"cclox/diagnostics"
	"cclox/interpreter"
	"cclox/lexer"
	"cclox/parser"
	"cclox/resolver"
)

// Source lexes, parses, resolves and interprets one chunk of Lox source,
// writing `print` output and diagnostics to out. Execution is skipped
// entirely if lexing, parsing or resolving reported any error, so a syntax
// mistake never has partial runtime effects.
func Source(source string, out io.Writer, interp *interpreter.Interpreter, diags *diagnostics.Diagnostics) {
	lx := lexer.New(source, diags)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, diags)
	statements := p.Parse()

	if diags.HadError {
		return
	}

	res := resolver.New(interp, diags)
	res.ResolveStatements(statements)

	if diags.HadError {
		return
	}

	interp.Interpret(statements, diags)
}
