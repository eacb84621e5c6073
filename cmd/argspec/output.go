// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/argspec/pkg/attrtree"
	"github.com/yeetrun/argspec/pkg/schema"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func checkFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", f)
}

func checkColorMode(m string) error {
	switch m {
	case colorAuto, colorAlways, colorNever:
		return nil
	}
	return fmt.Errorf("unknown color mode %q (want auto, always or never)", m)
}

// palette holds the colors used for one output stream.
type palette struct {
	heading *color.Color
	name    *color.Color
	dim     *color.Color
	err     *color.Color
}

func newPalette(mode string, w io.Writer) palette {
	p := palette{
		heading: color.New(color.Bold),
		name:    color.New(color.FgCyan),
		dim:     color.New(color.FgHiBlack),
		err:     color.New(color.FgRed),
	}
	enabled := mode == colorAlways || (mode == colorAuto && isColorTerminal(w))
	for _, c := range []*color.Color{p.heading, p.name, p.dim, p.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

func writeResult(w io.Writer, tree *attrtree.Node, format string, p palette) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case formatYAML:
		n, err := yamlNode(tree)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(w, tree, p)
}

func writeText(w io.Writer, tree *attrtree.Node, p palette) error {
	fmt.Fprintf(w, "%s %s\n", p.heading.Sprint("command:"), tree.Get("command", ""))
	opts, ok := tree.Lookup("options")
	if !ok {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for name, v := range opts.Attrs() {
		fmt.Fprintf(tw, "  %s\t%s\n", p.name.Sprint(name), textValue(v, p))
	}
	return tw.Flush()
}

func textValue(v any, p palette) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			if s == "" || strings.ContainsAny(s, " \t\"'") {
				s = strconv.Quote(s)
			}
			out[i] = s
		}
		return strings.Join(out, " ")
	case string:
		if v == "" {
			return p.dim.Sprint("-")
		}
		return v
	}
	return fmt.Sprint(v)
}

// yamlNode converts a tree into an ordered YAML mapping.
func yamlNode(n *attrtree.Node) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for name, v := range n.Attrs() {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &val)
	}
	for c := range n.Children() {
		cn, err := yamlNode(c)
		if err != nil {
			return nil, err
		}
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: c.Name()}, cn)
	}
	return m, nil
}

// writeHelp lists the enabled commands of s with their options.
func writeHelp(w io.Writer, s schema.Schema, p palette) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range s.Commands {
		if c.Disabled {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", p.heading.Sprint(c.Name), c.Description)
		for _, o := range c.Options {
			if o.Disabled {
				continue
			}
			names := make([]string, 0, len(o.Aliases)+1)
			for _, n := range o.Names() {
				names = append(names, schema.OptionPrefix+n)
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.name.Sprint(strings.Join(names, ", ")), p.dim.Sprint(optionSummary(o)), o.Description)
			for i, r := range o.Restrictions {
				desc := ""
				if i < len(o.RestrictionDescriptions) {
					desc = o.RestrictionDescriptions[i]
				}
				fmt.Fprintf(tw, "    %s\t\t%s\n", r, desc)
			}
		}
	}
	return tw.Flush()
}

func optionSummary(o schema.Option) string {
	if o.Type == schema.Required {
		return fmt.Sprintf("required, %s", o.Values)
	}
	return o.Values.String()
}
