// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// argyb checks a command line against an argument schema file and prints
// the bound values.
//
//	argyb --schema exporter.yaml [-o json] -- -d sales -b 100
package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/shayne/yargs"
	"github.com/yeetrun/argy/pkg/argy"
	"github.com/yeetrun/argy/pkg/schemafile"
	"github.com/yeetrun/argy/pkg/tui"
)

var version = "1.0.0"

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitParse  = 2
	exitSchema = 3
)

const usage = `Usage: argyb --schema <file> [flags] -- <arguments...>

Checks <arguments> against the schema file and prints the bound values.

Flags:
  -s, --schema <file>    Schema file (.yaml, .yml or .toml)
  -o, --format <format>  Output format (table|json|yaml|toml), default table
      --style <style>    Help style (plain|color|fancy), default plain
  -v, --verbose          Log parser state transitions to stderr
      --version          Print the version and exit
  -h, --help             Show this help
`

var errUsage = errors.New("usage requested")

type flagsParsed struct {
	Schema  string `flag:"schema" short:"s" help:"Schema file (.yaml, .yml or .toml)"`
	Format  string `flag:"format" short:"o" help:"Output format (table|json|yaml|toml)"`
	Style   string `flag:"style" help:"Help style (plain|color|fancy)"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log parser state transitions"`
	Version bool   `flag:"version" help:"Print the version and exit"`
}

// parseFlags parses argyb's own flags. Everything after "--" is returned as
// the tokens to check.
func parseFlags(args []string) (flagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[flagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return flagsParsed{}, nil, err
	}
	rest := result.RemainingArgs
	var tokens []string
	for i, arg := range rest {
		if arg == "--" {
			tokens = rest[i+1:]
			rest = rest[:i]
			break
		}
	}
	for _, arg := range rest {
		if arg == "--help" || arg == "-h" {
			return flagsParsed{}, nil, errUsage
		}
	}
	if len(rest) > 0 {
		return flagsParsed{}, nil, fmt.Errorf("unexpected arguments before --: %s", strings.Join(rest, " "))
	}
	if tokens == nil {
		tokens = []string{}
	}
	return result.Flags, tokens, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	con := tui.NewConsole(stderr, tui.ColorEnabled(stderr))
	flags, tokens, err := parseFlags(args)
	if errors.Is(err, errUsage) {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	if err != nil {
		con.Error("argyb: %v", err)
		fmt.Fprint(stderr, usage)
		return exitError
	}
	if flags.Version {
		fmt.Fprintf(stdout, "argyb %s\n", semver.MustParse(version))
		return exitOK
	}
	if flags.Schema == "" {
		con.Error("argyb: --schema is required")
		fmt.Fprint(stderr, usage)
		return exitError
	}
	enc, err := encoderFor(cmp.Or(flags.Format, "table"))
	if err != nil {
		con.Error("argyb: %v", err)
		return exitError
	}
	renderer, err := tui.Renderer(flags.Style, tui.ColorEnabled(stdout))
	if err != nil {
		con.Error("argyb: %v", err)
		return exitError
	}

	f, err := schemafile.Load(flags.Schema)
	if err != nil {
		con.Error("argyb: %v", err)
		return exitSchema
	}
	if err := f.CheckRequires(version); err != nil {
		con.Error("argyb: %s: %v", flags.Schema, err)
		return exitSchema
	}
	decls, vals, err := f.Build()
	if err != nil {
		con.Error("argyb: %s: %v", flags.Schema, err)
		return exitSchema
	}

	opts := append(f.Options(), argy.WithOutput(stdout), argy.WithRenderer(renderer))
	if flags.Verbose {
		opts = append(opts, argy.WithLogf(log.New(stderr, "", log.LstdFlags).Printf))
	}
	p, err := argy.New(vals, decls, opts...)
	if err != nil {
		con.Error("%s: %v", argy.CodeOf(err), err)
		return exitSchema
	}
	outcome, err := p.Parse(tokens)
	switch {
	case outcome == argy.OutcomeFailed:
		con.Error("%s: %v", argy.CodeOf(err), err)
		return exitParse
	case err != nil:
		con.Error("argyb: %v", err)
		return exitError
	case outcome == argy.OutcomeHelp:
		return exitOK
	}
	if err := enc(stdout, vals); err != nil {
		con.Error("argyb: writing output: %v", err)
		return exitError
	}
	return exitOK
}
