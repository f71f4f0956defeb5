// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// exporter declares the arguments of a table export tool and prints what it
// would export.
package main

import (
	"io"
	"os"

	"github.com/yeetrun/argy/pkg/argy"
	"github.com/yeetrun/argy/pkg/tui"
	"tailscale.com/util/must"
)

type exportArgs struct {
	DatabaseName    string
	Library         string
	File            string
	OutputPath      string
	BlockFactor     int32
	NoHeadings      bool
	TabDelimiter    bool
	ShowProgress    bool
	WriteSchemaFile bool
}

func (a *exportArgs) args() []argy.Arg {
	return []argy.Arg{
		argy.String(&a.DatabaseName, "--databasename", "Database name").Short("-d").Required(),
		argy.String(&a.Library, "--library", "Library").Short("-l").Required(),
		argy.String(&a.File, "--file", "File name").Short("-f").Required(),
		argy.String(&a.OutputPath, "--outputpath", "Output path").Short("-p"),
		argy.Int32(&a.BlockFactor, "--blockfactor", "Record blocking factor").Short("-b"),
		argy.Bool(&a.NoHeadings, "--noheadings", "Do not include headings row").Short("-nh"),
		argy.Bool(&a.TabDelimiter, "--tabdelimiter", "Use tab as field delimiter").Short("-t"),
		argy.Bool(&a.ShowProgress, "--showprogress", "Show export progress").Short("-x"),
		argy.Bool(&a.WriteSchemaFile, "--writeschemafile", "Write schema file").Short("-s"),
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns 0 on success or help and the failure's code otherwise.
func run(tokens []string, w io.Writer) int {
	con := tui.NewConsole(w, tui.ColorEnabled(w))
	a := &exportArgs{OutputPath: ".", BlockFactor: 500}
	p := must.Get(argy.New(a, a.args(),
		argy.WithDescription("Export a table to a delimited text file"),
		argy.WithURL("https://github.com/yeetrun/argy"),
		argy.WithOutput(w),
		argy.WithRenderer(tui.ColorRenderer{Enabled: tui.ColorEnabled(w)}),
	))
	p.OnHelpShown(func(a *exportArgs) {
		con.Info("Defaults: output path %q, block factor %d", a.OutputPath, a.BlockFactor)
	})

	outcome, err := p.Parse(tokens)
	if outcome == argy.OutcomeHelp {
		return 0
	}
	if err != nil {
		con.Error("%v", err)
		return int(argy.CodeOf(err))
	}

	delim := "comma"
	if a.TabDelimiter {
		delim = "tab"
	}
	con.Success("Exporting %s/%s from %q to %s", a.Library, a.File, a.DatabaseName, a.OutputPath)
	con.Info("Block factor %d, %s delimited, headings %t, progress %t, schema file %t",
		a.BlockFactor, delim, !a.NoHeadings, a.ShowProgress, a.WriteSchemaFile)
	return 0
}
