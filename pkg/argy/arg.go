// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the value type of an argument.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt32
	KindInt64
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	}
	return "Invalid"
}

// ParseKind maps a type name as written in a schema file to a Kind.
// Unrecognized names return KindInvalid so that the schema check reports
// them.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "int":
		return KindInt32
	case "int64", "long":
		return KindInt64
	case "string", "text":
		return KindString
	case "bool", "boolean":
		return KindBool
	}
	return KindInvalid
}

// Value holds one coerced argument value.
type Value struct {
	kind Kind
	n    int64
	s    string
	b    bool
}

func Int32Value(n int32) Value { return Value{kind: KindInt32, n: int64(n)} }

func Int64Value(n int64) Value { return Value{kind: KindInt64, n: n} }

func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int32() int32 { return int32(v.n) }

func (v Value) Int64() int64 { return v.n }

func (v Value) Text() string { return v.s }

func (v Value) Bool() bool { return v.b }

func (v Value) Interface() any {
	switch v.kind {
	case KindInt32:
		return int32(v.n)
	case KindInt64:
		return v.n
	case KindString:
		return v.s
	case KindBool:
		return v.b
	}
	return nil
}

// String renders v the way it would be typed on a command line.
func (v Value) String() string {
	switch v.kind {
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.n, 10)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Arg declares one command-line argument and the setter that receives its
// value. Build one with Int32, Int64, String, Bool, Var or Func and refine
// it with Short, Required and Named.
type Arg struct {
	name        string
	flag        string
	short       string
	kind        Kind
	required    bool
	description string
	set         func(Value)

	// typeName names the rejected type in the InvalidTypeInArgsClass message.
	typeName string
}

// Short sets the shorthand, which must start with "-".
func (a Arg) Short(short string) Arg {
	a.short = short
	return a
}

func (a Arg) Required() Arg {
	a.required = true
	return a
}

// Named overrides the field name reported in diagnostics.
func (a Arg) Named(name string) Arg {
	a.name = name
	return a
}

// TypeName sets the type name reported when the argument's kind is invalid.
func (a Arg) TypeName(name string) Arg {
	a.typeName = name
	return a
}

func Int32(p *int32, flag, description string) Arg {
	if p == nil {
		return Func("", KindInt32, nil, flag, description)
	}
	return Func("", KindInt32, func(v Value) { *p = v.Int32() }, flag, description)
}

func Int64(p *int64, flag, description string) Arg {
	if p == nil {
		return Func("", KindInt64, nil, flag, description)
	}
	return Func("", KindInt64, func(v Value) { *p = v.Int64() }, flag, description)
}

func String(p *string, flag, description string) Arg {
	if p == nil {
		return Func("", KindString, nil, flag, description)
	}
	return Func("", KindString, func(v Value) { *p = v.Text() }, flag, description)
}

func Bool(p *bool, flag, description string) Arg {
	if p == nil {
		return Func("", KindBool, nil, flag, description)
	}
	return Func("", KindBool, func(v Value) { *p = v.Bool() }, flag, description)
}

// Var declares an argument bound to p, which must be one of *int32, *int64,
// *int, *string or *bool. Any other type produces an argument that
// NewSchema rejects with InvalidTypeInArgsClass.
func Var(p any, flag, description string) Arg {
	switch p := p.(type) {
	case *int32:
		return Int32(p, flag, description)
	case *int64:
		return Int64(p, flag, description)
	case *int:
		if p == nil {
			return Func("", KindInt64, nil, flag, description)
		}
		return Func("", KindInt64, func(v Value) { *p = int(v.Int64()) }, flag, description)
	case *string:
		return String(p, flag, description)
	case *bool:
		return Bool(p, flag, description)
	}
	return Func("", KindInvalid, nil, flag, description).TypeName(fmt.Sprintf("%T", p))
}

// Func declares an argument with an explicit setter. An empty name defaults
// to the long flag without its dashes. A nil set is rejected by NewSchema.
// Nil pointers given to Int32, Int64, String, Bool and Var are treated the
// same way.
func Func(name string, kind Kind, set func(Value), flag, description string) Arg {
	if name == "" {
		name = strings.TrimLeft(flag, "-")
	}
	return Arg{
		name:        name,
		flag:        flag,
		kind:        kind,
		description: description,
		set:         set,
	}
}

// Descriptor is the read-only description of a declared argument.
type Descriptor struct {
	Name        string
	Flag        string
	Short       string
	Kind        Kind
	Required    bool
	Description string
}

// Matches reports whether token is the descriptor's flag or shorthand.
func (d Descriptor) Matches(token string) bool {
	return token == d.Flag || (d.Short != "" && token == d.Short)
}

// Label is the "<flag>/<short>" form used in diagnostics.
func (d Descriptor) Label() string {
	if d.Short == "" {
		return d.Flag
	}
	return d.Flag + "/" + d.Short
}
