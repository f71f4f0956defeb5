// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorEnabled reports whether colored output should be written to w.
// NO_COLOR, an empty or dumb TERM, and writers that are not terminals all
// disable color.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Console writes whole lines in the info, success and error colors.
type Console struct {
	w       io.Writer
	info    *color.Color
	success *color.Color
	fail    *color.Color
}

// NewConsole returns a Console writing to w. Colors are used only when
// enabled is true.
func NewConsole(w io.Writer, enabled bool) *Console {
	c := &Console{
		w:       w,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.info, c.success, c.fail} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer { return c.w }

func (c *Console) Info(format string, args ...any) error {
	return c.line(c.info, format, args...)
}

func (c *Console) Success(format string, args ...any) error {
	return c.line(c.success, format, args...)
}

func (c *Console) Error(format string, args ...any) error {
	return c.line(c.fail, format, args...)
}

func (c *Console) line(col *color.Color, format string, args ...any) error {
	s := format
	if len(args) > 0 {
		s = fmt.Sprintf(format, args...)
	}
	_, err := col.Fprintln(c.w, s)
	return err
}
