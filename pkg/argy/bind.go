// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A value may start with `\-` so it is not taken for a flag.
	escapedMinus = regexp.MustCompile(`^\\-`)
	integer      = regexp.MustCompile(`^(-)?[0-9]+$`)
)

func unescape(s string) string {
	return escapedMinus.ReplaceAllString(s, "-")
}

// coerce converts raw to the argument's kind.
func coerce(a *Arg, raw string) (Value, error) {
	switch a.kind {
	case KindBool:
		return BoolValue(strings.EqualFold(raw, trueString)), nil
	case KindString:
		return StringValue(unescape(raw)), nil
	}

	s := unescape(raw)
	if !integer.MatchString(s) {
		return Value{}, errorf(ValueMustBeANumber, "Value for %s must be a number.", a.descriptor().Label())
	}
	bits := 64
	if a.kind == KindInt32 {
		bits = 32
	}
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, errorf(ValueMustBeANumber, "Value for %s is out of range for %s.", a.descriptor().Label(), a.kind)
		}
		return Value{}, errorf(ValueMustBeANumber, "Value for %s must be a number.", a.descriptor().Label())
	}
	if a.kind == KindInt32 {
		return Int32Value(int32(n)), nil
	}
	return Int64Value(n), nil
}

// bind coerces every parsed value and, only when all of them convert,
// hands each one to its argument's setter in command-line order.
func (s *Schema) bind(values []RawValue) (int, error) {
	type pending struct {
		arg *Arg
		v   Value
	}
	out := make([]pending, 0, len(values))
	var bad []string
	for _, rv := range values {
		a, ok := s.arg(rv.Token)
		if !ok {
			continue
		}
		v, err := coerce(a, rv.Value)
		if err != nil {
			bad = append(bad, err.Error())
			continue
		}
		out = append(out, pending{arg: a, v: v})
	}
	if len(bad) > 0 {
		return 0, &Error{Code: ValueMustBeANumber, Msg: strings.Join(bad, " ")}
	}
	for _, p := range out {
		p.arg.set(p.v)
	}
	return len(out), nil
}
