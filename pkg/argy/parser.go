// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"tailscale.com/types/logger"
)

// Outcome is the terminal state of a Parse call.
type Outcome int

const (
	// OutcomeFailed means validation, tokenizing or binding failed; the
	// accompanying error is an *Error.
	OutcomeFailed Outcome = iota
	// OutcomeBound means every parsed value was written to the target.
	OutcomeBound
	// OutcomeHelp means help was requested and rendered. The target is
	// untouched.
	OutcomeHelp
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBound:
		return "bound"
	case OutcomeHelp:
		return "help"
	}
	return "failed"
}

// Code returns the Code corresponding to a successful outcome.
func (o Outcome) Code() Code {
	if o == OutcomeHelp {
		return HelpShown
	}
	return Success
}

type options struct {
	description string
	url         string
	out         io.Writer
	renderer    HelpRenderer
	logf        logger.Logf
}

// Option configures a Parser.
type Option func(*options)

// WithDescription sets the text shown above the help table.
func WithDescription(s string) Option {
	return func(o *options) { o.description = s }
}

// WithURL sets the reference URL shown below the help table.
func WithURL(url string) Option {
	return func(o *options) { o.url = url }
}

// WithOutput sets where help is written. It defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithRenderer replaces TableRenderer.
func WithRenderer(r HelpRenderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithLogf sets the debug logger. It defaults to logger.Discard.
func WithLogf(logf logger.Logf) Option {
	return func(o *options) { o.logf = logf }
}

// Parser binds one command line to one target. It is not safe for
// concurrent use.
type Parser[T any] struct {
	target *T
	schema *Schema
	opts   options
	onHelp func(*T)
	values []RawValue
}

// New validates args and returns a parser that writes into target through
// the args' setters. A schema defect is returned as an *Error whose Code
// satisfies IsSchemaError.
func New[T any](target *T, args []Arg, opts ...Option) (*Parser[T], error) {
	schema, err := NewSchema(args...)
	if err != nil {
		return nil, err
	}
	p := &Parser[T]{
		target: target,
		schema: schema,
		opts: options{
			out:      os.Stdout,
			renderer: TableRenderer,
			logf:     logger.Discard,
		},
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p, nil
}

// OnHelpShown registers fn to be called, after help is rendered, with the
// unmodified target.
func (p *Parser[T]) OnHelpShown(fn func(target *T)) {
	p.onHelp = fn
}

// Schema returns the parser's schema.
func (p *Parser[T]) Schema() *Schema { return p.schema }

// Target returns the structure the parser writes into.
func (p *Parser[T]) Target() *T { return p.target }

// Values returns the flags and raw values from the last successful
// tokenize step, in command-line order.
func (p *Parser[T]) Values() []RawValue { return slices.Clone(p.values) }

// HelpRequested reports whether tokens ask for help: no tokens at all, or
// a first token equal to --help or -h in any case.
func HelpRequested(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	first := tokens[0]
	return strings.EqualFold(first, HelpFlag) || strings.EqualFold(first, HelpShort)
}

// Parse validates tokens, splits them into flag/value pairs and binds the
// values to the target. Help requests bypass validation entirely.
func (p *Parser[T]) Parse(tokens []string) (Outcome, error) {
	p.values = nil
	if HelpRequested(tokens) {
		p.opts.logf("argy: help requested")
		if err := p.Help(p.opts.out); err != nil {
			return OutcomeHelp, err
		}
		if p.onHelp != nil {
			p.onHelp(p.target)
		}
		return OutcomeHelp, nil
	}

	if err := p.schema.validate(tokens); err != nil {
		p.opts.logf("argy: validation failed: %v", CodeOf(err))
		return OutcomeFailed, err
	}
	values, err := p.schema.tokenize(tokens)
	if err != nil {
		p.opts.logf("argy: tokenize failed: %v", CodeOf(err))
		return OutcomeFailed, err
	}
	p.values = values
	n, err := p.schema.bind(values)
	if err != nil {
		p.opts.logf("argy: bind failed: %v", CodeOf(err))
		return OutcomeFailed, err
	}
	p.opts.logf("argy: bound %d of %d arguments", n, p.schema.Len())
	return OutcomeBound, nil
}

// Help renders the schema with the configured renderer.
func (p *Parser[T]) Help(w io.Writer) error {
	h := Help{
		Description: p.opts.description,
		URL:         p.opts.url,
		Args:        p.schema.Descriptors(),
	}
	if err := p.opts.renderer.RenderHelp(w, h); err != nil {
		return fmt.Errorf("rendering help: %w", err)
	}
	return nil
}

// Parse is a one-shot helper that builds a parser for target and args and
// parses tokens with it.
func Parse[T any](target *T, args []Arg, tokens []string, opts ...Option) (Outcome, error) {
	p, err := New(target, args, opts...)
	if err != nil {
		return OutcomeFailed, err
	}
	return p.Parse(tokens)
}
