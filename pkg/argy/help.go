// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Help is everything a renderer needs to describe a schema.
type Help struct {
	Description string
	URL         string
	Args        []Descriptor
}

// HelpRenderer writes help for a schema to w.
type HelpRenderer interface {
	RenderHelp(w io.Writer, h Help) error
}

// HelpRendererFunc adapts a function to HelpRenderer.
type HelpRendererFunc func(w io.Writer, h Help) error

func (f HelpRendererFunc) RenderHelp(w io.Writer, h Help) error { return f(w, h) }

const (
	HelpHeader    = "Flag                  ShortHand  Required  Description"
	HelpSeparator = "--------------------  ---------  --------  ---------------------------------------------"
)

// HelpLines returns the help table as lines: an optional description
// followed by a blank line, the header and separator, one row per argument,
// the built-in help row and an optional trailing URL line.
func HelpLines(h Help) []string {
	var lines []string
	if h.Description != "" {
		lines = append(lines, h.Description, "")
	}
	lines = append(lines, HelpHeader, HelpSeparator)
	for _, d := range h.Args {
		lines = append(lines, HelpRow(d.Flag, d.Short, strconv.FormatBool(d.Required), d.Description))
	}
	lines = append(lines, HelpRow(HelpFlag, HelpShort, "", "Show this help"))
	if h.URL != "" {
		lines = append(lines, "", "See this URL for more help: "+h.URL)
	}
	return lines
}

// HelpRow formats one fixed-width row of the help table.
func HelpRow(flag, short, required, description string) string {
	return strings.TrimRight(fmt.Sprintf("%-24s %-7s   %-6s  %s", flag, short, required, description), " ")
}

// TableRenderer is the plain-text HelpRenderer used by default.
var TableRenderer HelpRenderer = HelpRendererFunc(func(w io.Writer, h Help) error {
	for _, line := range HelpLines(h) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
})
