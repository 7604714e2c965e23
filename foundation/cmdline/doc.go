// File: doc.go
// Title: Command-Line Tokenizer Package Documentation
// Description: Splits a launcher command line into application, options and
//              the unparsed command remainder.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

/*
Package cmdline splits a complete command line, program token included, into
three parts:

  - the application field (always the first field, never an option)
  - a map of options, keyed by lower-cased option name
  - the remainder: the raw source text from the first non-option field to the
    end, with spacing and quoting preserved so it can be run as-is

A field is an option when it starts with one of the configured prefix markers
and has at least one character after the marker. The option text is split
into name and parameter at the first configured separator.

	res := cmdline.Split(`prog -U:T -Wait run.exe --flag`,
		[]string{"--", "-"}, []string{"=", ":"})

	res.Application // "prog"
	res.Options     // {"u": "T", "wait": ""}
	res.Remainder   // "run.exe --flag"

Prefix markers and separators are tried in the order given. Callers list
longer markers first so "--" is not read as "-" followed by "-".

Splitting never fails: any input, however degenerate, produces a result.
Whether an option name or value makes sense is up to the caller.
*/
package cmdline
