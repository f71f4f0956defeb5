// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/yeetrun/argy/pkg/argy"
)

// ColorRenderer writes the help table in the info color.
type ColorRenderer struct {
	Enabled bool
}

func (r ColorRenderer) RenderHelp(w io.Writer, h argy.Help) error {
	c := NewConsole(w, r.Enabled)
	for _, line := range argy.HelpLines(h) {
		if err := c.Info("%s", line); err != nil {
			return err
		}
	}
	return nil
}

// StyledRenderer writes the help table with lipgloss styles. Required
// arguments are highlighted. Styling is dropped when w is not a terminal.
type StyledRenderer struct{}

func (StyledRenderer) RenderHelp(w io.Writer, h argy.Help) error {
	re := lipgloss.NewRenderer(w)
	var (
		title    = re.NewStyle().Bold(true)
		header   = re.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
		faint    = re.NewStyle().Faint(true)
		required = re.NewStyle().Foreground(lipgloss.Color("3"))
		plain    = re.NewStyle()
	)

	var lines []string
	if h.Description != "" {
		lines = append(lines, title.Render(h.Description), "")
	}
	lines = append(lines, header.Render(argy.HelpHeader), faint.Render(argy.HelpSeparator))
	for _, d := range h.Args {
		row := argy.HelpRow(d.Flag, d.Short, strconv.FormatBool(d.Required), d.Description)
		if d.Required {
			lines = append(lines, required.Render(row))
		} else {
			lines = append(lines, plain.Render(row))
		}
	}
	lines = append(lines, faint.Render(argy.HelpRow(argy.HelpFlag, argy.HelpShort, "", "Show this help")))
	if h.URL != "" {
		lines = append(lines, "", "See this URL for more help: "+re.NewStyle().Underline(true).Render(h.URL))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Renderer returns the help renderer for a --style value: "plain",
// "color" or "fancy". Color is only used when enabled is true.
func Renderer(style string, enabled bool) (argy.HelpRenderer, error) {
	switch style {
	case "", "plain":
		return argy.TableRenderer, nil
	case "color":
		return ColorRenderer{Enabled: enabled}, nil
	case "fancy":
		return StyledRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown help style %q (want plain, color or fancy)", style)
}
