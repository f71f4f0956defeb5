// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argy/pkg/schemafile"
	"gopkg.in/yaml.v3"
)

type encoder func(w io.Writer, vals *schemafile.Values) error

func encoderFor(format string) (encoder, error) {
	switch format {
	case "table":
		return writeTable, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	case "toml":
		return writeTOML, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want table, json, yaml or toml)", format)
}

func writeTable(w io.Writer, vals *schemafile.Values) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tVALUE")
	for _, name := range vals.Names() {
		v, _ := vals.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, v.Kind(), v)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, vals *schemafile.Values) error {
	b, err := json.MarshalIndent(vals.Map(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeYAML(w io.Writer, vals *schemafile.Values) error {
	b, err := yaml.Marshal(vals.Map())
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func writeTOML(w io.Writer, vals *schemafile.Values) error {
	return toml.NewEncoder(w).Encode(vals.Map())
}
