// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argy/pkg/argy"
)

const exporterYAML = `description: Export a table
url: https://example.com/exporter
requires: ">= 1.0.0"
args:
  - flag: --databasename
    short: -d
    type: string
    required: true
    description: Database name
  - flag: --blockfactor
    short: -b
    type: int32
    default: 500
    description: Record blocking factor
  - flag: --noheadings
    short: -nh
    type: bool
    description: Do not include headings row
`

const exporterTOML = `description = "Export a table"
url = "https://example.com/exporter"
requires = ">= 1.0.0"

[[args]]
flag = "--databasename"
short = "-d"
type = "string"
required = true
description = "Database name"

[[args]]
flag = "--blockfactor"
short = "-b"
type = "int32"
default = 500
description = "Record blocking factor"

[[args]]
flag = "--noheadings"
short = "-nh"
type = "bool"
description = "Do not include headings row"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "args.yaml", content: exporterYAML},
		{name: "yml", file: "args.yml", content: exporterYAML},
		{name: "toml", file: "args.toml", content: exporterTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if f.Description != "Export a table" || f.URL != "https://example.com/exporter" {
				t.Errorf("Load() header = %q %q", f.Description, f.URL)
			}
			var flags []string
			for _, a := range f.Args {
				flags = append(flags, a.Flag+"/"+a.Short+"/"+a.Type)
			}
			want := []string{"--databasename/-d/string", "--blockfactor/-b/int32", "--noheadings/-nh/bool"}
			if diff := cmp.Diff(want, flags); diff != "" {
				t.Errorf("Load() args mismatch (-want +got):\n%s", diff)
			}
			if !f.Args[0].Required || f.Args[1].Required {
				t.Errorf("Load() required = %v %v, want true false", f.Args[0].Required, f.Args[1].Required)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{name: "extension", file: "args.json", content: "{}", want: "unsupported schema file extension"},
		{name: "yaml unknown key", file: "args.yaml", content: "args: []\ncolour: red\n", want: "colour"},
		{name: "toml unknown key", file: "args.toml", content: "colour = \"red\"\n", want: "unknown keys: colour"},
		{name: "toml syntax", file: "args.toml", content: "args = [\n", want: "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		requires string
		version  string
		wantErr  bool
	}{
		{requires: "", version: "0.1.0"},
		{requires: ">= 1.0.0", version: "1.2.3"},
		{requires: "^1.2", version: "1.9.0"},
		{requires: "^1.2", version: "2.0.0", wantErr: true},
		{requires: ">= 1.0.0", version: "0.9.0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.requires+"@"+tt.version, func(t *testing.T) {
			f := &File{Requires: tt.requires}
			err := f.CheckRequires(tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckRequires() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnsupportedVersion) {
				t.Errorf("CheckRequires() error = %v, want ErrUnsupportedVersion", err)
			}
		})
	}
	if err := (&File{Requires: "not a constraint"}).CheckRequires("1.0.0"); err == nil || errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("CheckRequires(bad constraint) error = %v", err)
	}
}

func TestBuild_Parse(t *testing.T) {
	f, err := Decode([]byte(exporterYAML), "yaml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	args, vals, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	wantDefaults := map[string]any{"databasename": "", "blockfactor": int32(500), "noheadings": false}
	if diff := cmp.Diff(wantDefaults, vals.Map()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	p, err := argy.New(vals, args, f.Options()...)
	if err != nil {
		t.Fatalf("argy.New() error = %v", err)
	}
	outcome, err := p.Parse([]string{"-d", "sales", "--noheadings"})
	if err != nil || outcome != argy.OutcomeBound {
		t.Fatalf("Parse() = %v, %v, want bound", outcome, err)
	}
	want := map[string]any{"databasename": "sales", "blockfactor": int32(500), "noheadings": true}
	if diff := cmp.Diff(want, vals.Map()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"databasename", "blockfactor", "noheadings"}, vals.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if v, ok := vals.Get("databasename"); !ok || v.Text() != "sales" {
		t.Errorf("Get(databasename) = %v, %v", v, ok)
	}
}

func TestBuild_InvalidType(t *testing.T) {
	f := &File{Args: []ArgSpec{
		{Flag: "--ok", Type: "string"},
		{Name: "ratio", Flag: "--ratio", Type: "float"},
	}}
	args, vals, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	_, err = argy.New(vals, args)
	if got := argy.CodeOf(err); got != argy.InvalidTypeInArgsClass {
		t.Fatalf("argy.New() code = %v, want InvalidTypeInArgsClass", got)
	}
	want := "Argument [ratio] is an invalid type: [float]. Types must be int32, int64, string or bool."
	if err.Error() != want {
		t.Errorf("argy.New() error = %q, want %q", err, want)
	}
}

func TestBuild_BadDefault(t *testing.T) {
	tests := []struct {
		name string
		spec ArgSpec
	}{
		{name: "not a number", spec: ArgSpec{Flag: "--count", Type: "int64", Default: "many"}},
		{name: "int32 overflow", spec: ArgSpec{Flag: "--count", Type: "int32", Default: 1 << 40}},
		{name: "float", spec: ArgSpec{Flag: "--count", Type: "int", Default: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Args: []ArgSpec{tt.spec}}
			if _, _, err := f.Build(); err == nil {
				t.Error("Build() error = nil, want error")
			}
		})
	}
}

func TestBuild_DuplicateName(t *testing.T) {
	tests := []struct {
		name string
		args []ArgSpec
	}{
		{
			name: "explicit names",
			args: []ArgSpec{
				{Name: "x", Flag: "--alpha", Type: "int32", Default: 1},
				{Name: "x", Flag: "--beta", Type: "string", Default: "b"},
			},
		},
		{
			name: "name matches another flag",
			args: []ArgSpec{
				{Flag: "--alpha", Type: "int32"},
				{Name: "alpha", Flag: "--beta", Type: "string"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Args: tt.args}
			args, vals, err := f.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			_, err = argy.New(vals, args)
			if got := argy.CodeOf(err); got != argy.DuplicateFlagsPresentInAttribute {
				t.Errorf("argy.New() code = %v, want DuplicateFlagsPresentInAttribute (err: %v)", got, err)
			}
		})
	}
}
