// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argy parses a command line made only of flags and their values
// into a caller-owned structure.
//
// Arguments are declared with typed constructors that capture a pointer to
// the field they fill:
//
//	type ExportArgs struct {
//	    Database    string
//	    BlockFactor int32
//	    NoHeadings  bool
//	}
//
//	var a ExportArgs
//	p, err := argy.New(&a, []argy.Arg{
//	    argy.String(&a.Database, "--databasename", "Database name").Short("-d").Required(),
//	    argy.Int32(&a.BlockFactor, "--blockfactor", "Record blocking factor").Short("-b"),
//	    argy.Bool(&a.NoHeadings, "--noheadings", "Do not include headings row").Short("-nh"),
//	}, argy.WithDescription("Export a table"))
//	if err != nil {
//	    log.Fatal(err) // the declarations themselves are wrong
//	}
//	switch outcome, err := p.Parse(os.Args[1:]); {
//	case err != nil:
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(int(argy.CodeOf(err)))
//	case outcome == argy.OutcomeHelp:
//	    return
//	}
//
// # Declarations
//
// Long flags start with "--", shorthands with "-" and are optional. No flag
// or shorthand may be declared twice, and --help and -h are reserved.
// Supported kinds are Int32, Int64, String and Boolean. New and NewSchema
// report the first bad declaration as an *Error with a schema Code.
//
// # Command line grammar
//
// The command line is a sequence of (flag [value]) pairs with no positional
// arguments. Boolean flags are switches and never take a value. Every other
// flag takes the next token verbatim. A value that would start with "-"
// must be written with a leading backslash (`\-500`, `\-examples`); the
// backslash is removed before binding. An empty command line, or one whose
// first token is --help or -h in any case, renders help instead of parsing.
//
// Before any value is read the raw tokens are checked, in order, for
// unknown flags, missing required flags, a flag given in both its long and
// short form, and repeated flags. Each check reports every offender it
// finds.
//
// Values are bound only if all of them convert, so a failed Parse never
// leaves the target partially written.
package argy
