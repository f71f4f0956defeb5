// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads argument schemas from YAML or TOML files and turns
// them into argy registrations that bind into a Values map.
package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/argy/pkg/argy"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/mak"
)

// ErrUnsupportedVersion is returned by CheckRequires when the running
// version does not satisfy the file's requires constraint.
var ErrUnsupportedVersion = errors.New("unsupported version")

// File is a decoded schema file.
type File struct {
	Description string    `yaml:"description,omitempty" toml:"description,omitempty"`
	URL         string    `yaml:"url,omitempty" toml:"url,omitempty"`
	Requires    string    `yaml:"requires,omitempty" toml:"requires,omitempty"`
	Args        []ArgSpec `yaml:"args" toml:"args"`
}

// ArgSpec declares one argument. Type is one of the names accepted by
// argy.ParseKind.
type ArgSpec struct {
	Name        string `yaml:"name,omitempty" toml:"name,omitempty"`
	Flag        string `yaml:"flag" toml:"flag"`
	Short       string `yaml:"short,omitempty" toml:"short,omitempty"`
	Type        string `yaml:"type" toml:"type"`
	Required    bool   `yaml:"required,omitempty" toml:"required,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" toml:"default,omitempty"`
}

// Format returns "yaml" or "toml" for a schema file path, based on its
// extension.
func Format(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	}
	return "", fmt.Errorf("unsupported schema file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// Load reads and decodes the schema file at path.
func Load(path string) (*File, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a schema in the given format. Unknown keys are rejected.
func Decode(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case "toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown schema format %q", format)
	}
	return &f, nil
}

// CheckRequires reports whether version satisfies the file's requires
// constraint. An empty constraint accepts every version.
func (f *File) CheckRequires(version string) error {
	if f.Requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(f.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", f.Requires, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: schema requires %s, have %s", ErrUnsupportedVersion, f.Requires, v)
	}
	return nil
}

// Options returns the parser options carried by the file.
func (f *File) Options() []argy.Option {
	return []argy.Option{argy.WithDescription(f.Description), argy.WithURL(f.URL)}
}

// Build returns the argy registrations for the file and the Values they bind
// into. Every argument starts at its default, or the zero value of its type.
// Type names are checked by argy.NewSchema, in declaration order with the
// other schema checks.
func (f *File) Build() ([]argy.Arg, *Values, error) {
	vals := &Values{}
	args := make([]argy.Arg, 0, len(f.Args))
	for _, spec := range f.Args {
		name := spec.Name
		if name == "" {
			name = strings.TrimLeft(spec.Flag, "-")
		}
		kind := argy.ParseKind(spec.Type)
		if kind != argy.KindInvalid {
			def, err := defaultValue(kind, spec.Default)
			if err != nil {
				return nil, nil, fmt.Errorf("argument %s: %w", name, err)
			}
			vals.set(name, def)
		}
		a := argy.Func(name, kind, func(v argy.Value) { vals.set(name, v) }, spec.Flag, spec.Description).
			TypeName(spec.Type)
		if spec.Short != "" {
			a = a.Short(spec.Short)
		}
		if spec.Required {
			a = a.Required()
		}
		args = append(args, a)
	}
	return args, vals, nil
}

func defaultValue(kind argy.Kind, def any) (argy.Value, error) {
	var s string
	if def != nil {
		s = fmt.Sprint(def)
	}
	switch kind {
	case argy.KindInt32, argy.KindInt64:
		bits := 64
		if kind == argy.KindInt32 {
			bits = 32
		}
		var n int64
		if s != "" {
			var err error
			n, err = strconv.ParseInt(s, 10, bits)
			if err != nil {
				return argy.Value{}, fmt.Errorf("default %q is not a valid %s", s, kind)
			}
		}
		if kind == argy.KindInt32 {
			return argy.Int32Value(int32(n)), nil
		}
		return argy.Int64Value(n), nil
	case argy.KindBool:
		return argy.BoolValue(strings.EqualFold(s, "true")), nil
	default:
		return argy.StringValue(s), nil
	}
}

// Values holds bound argument values by name, in declaration order.
type Values struct {
	names []string
	m     map[string]argy.Value
}

func (v *Values) set(name string, val argy.Value) {
	if _, ok := v.m[name]; !ok {
		v.names = append(v.names, name)
	}
	mak.Set(&v.m, name, val)
}

// Names returns the argument names in declaration order.
func (v *Values) Names() []string { return slices.Clone(v.names) }

func (v *Values) Get(name string) (argy.Value, bool) {
	val, ok := v.m[name]
	return val, ok
}

// Map returns the values as plain Go values keyed by name, suitable for
// encoding.
func (v *Values) Map() map[string]any {
	m := make(map[string]any, len(v.m))
	for name, val := range v.m {
		m[name] = val.Interface()
	}
	return m
}
