// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"strings"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Reserved help tokens. They can never be declared by a caller.
const (
	HelpFlag  = "--help"
	HelpShort = "-h"
)

// Schema is the validated, ordered set of declared arguments. It is
// immutable once built.
type Schema struct {
	args  []Arg
	index map[string]int // flag or shorthand -> position in args
}

// NewSchema validates args in declaration order and returns the schema.
// Each argument is checked for a supported type, reserved help flags, the
// "--"/"-" prefixes and reuse of a flag, shorthand or name already claimed
// by an earlier argument, stopping at the first failure.
func NewSchema(args ...Arg) (*Schema, error) {
	s := &Schema{args: make([]Arg, 0, len(args))}
	used := make(set.Set[string])
	names := make(set.Set[string])
	for _, a := range args {
		if err := checkArg(a, used, names); err != nil {
			return nil, err
		}
		names.Add(a.name)
		used.Add(a.flag)
		mak.Set(&s.index, a.flag, len(s.args))
		if a.short != "" {
			used.Add(a.short)
			mak.Set(&s.index, a.short, len(s.args))
		}
		s.args = append(s.args, a)
	}
	return s, nil
}

func checkArg(a Arg, used, names set.Set[string]) error {
	switch a.kind {
	case KindInt32, KindInt64, KindString, KindBool:
	default:
		typ := a.typeName
		if typ == "" {
			typ = a.kind.String()
		}
		return errorf(InvalidTypeInArgsClass,
			"Argument [%s] is an invalid type: [%s]. Types must be int32, int64, string or bool.", a.name, typ)
	}
	if a.set == nil {
		return errorf(InvalidTypeInArgsClass, "Argument [%s] has no destination to bind to.", a.name)
	}
	if strings.EqualFold(a.flag, HelpFlag) || strings.EqualFold(a.short, HelpShort) {
		return errorf(HelpFlagCannotBeInCmdArgsClass, "%s/%s are reserved flag/shorthand names.", HelpFlag, HelpShort)
	}
	if !strings.HasPrefix(a.flag, "--") || (a.short != "" && !strings.HasPrefix(a.short, "-")) {
		return errorf(FlagOrShortHandDoesNotStartWithDash,
			"Argument '%s' has a flag or shorthand that does not have the '--' or '-' prefix.", a.name)
	}
	if used.Contains(a.flag) || (a.short != "" && (used.Contains(a.short) || a.short == a.flag)) {
		return errorf(DuplicateFlagsPresentInAttribute,
			"Argument [%s] has flag or shorthand (%s/%s) already assigned.", a.name, a.flag, a.short)
	}
	if names.Contains(a.name) {
		return errorf(DuplicateFlagsPresentInAttribute, "Argument [%s] is declared more than once.", a.name)
	}
	return nil
}

// Len returns the number of declared arguments.
func (s *Schema) Len() int { return len(s.args) }

// Descriptors returns the declared arguments in declaration order.
func (s *Schema) Descriptors() []Descriptor {
	out := make([]Descriptor, len(s.args))
	for i, a := range s.args {
		out[i] = a.descriptor()
	}
	return out
}

// Lookup returns the descriptor whose flag or shorthand is token.
func (s *Schema) Lookup(token string) (Descriptor, bool) {
	a, ok := s.arg(token)
	if !ok {
		return Descriptor{}, false
	}
	return a.descriptor(), true
}

func (s *Schema) arg(token string) (*Arg, bool) {
	i, ok := s.index[token]
	if !ok {
		return nil, false
	}
	return &s.args[i], true
}

func (a *Arg) descriptor() Descriptor {
	return Descriptor{
		Name:        a.name,
		Flag:        a.flag,
		Short:       a.short,
		Kind:        a.kind,
		Required:    a.required,
		Description: a.description,
	}
}
