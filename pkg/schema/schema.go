// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"slices"

	"golang.org/x/text/cases"
)

// HelpCommand is always part of a validated schema and takes no options.
const HelpCommand = "HELP"

// OptionPrefix marks an option token on the command line.
const OptionPrefix = "-"

// Schema describes every command a program accepts.
type Schema struct {
	// CaseSensitive makes command names, option names, aliases and
	// restriction values compare exactly. Otherwise they compare with
	// Unicode case folding.
	CaseSensitive bool
	// IgnoreUnknown silently drops unknown options together with the
	// values that follow them.
	IgnoreUnknown bool
	// StripQuotes removes one matching pair of surrounding quotes from the
	// command selector and from every value.
	StripQuotes bool

	Commands []Command
}

// Command is a named set of options selected by the first argument.
type Command struct {
	Name        string
	Description string
	Disabled    bool
	Options     []Option
}

// Option describes a single command-line option.
type Option struct {
	// Name is the canonical key of the option within its command.
	Name        string
	Aliases     []string
	Description string
	Disabled    bool

	Type   Type
	Values ValueFlags

	// Restrictions lists the accepted values of a ValueRestricted option.
	// RestrictionCodes and RestrictionDescriptions, when set, run parallel
	// to it.
	Restrictions            []string
	RestrictionCodes        []int64
	RestrictionDescriptions []string

	// Incongruous names options of the same command that must not be given
	// together with this one.
	Incongruous []string
	// Dependencies names options of the same command that must be given
	// whenever this one is.
	Dependencies []string
}

// Names returns the canonical name followed by all aliases.
func (o *Option) Names() []string {
	return append([]string{o.Name}, o.Aliases...)
}

// Enabled reports whether the option takes part in parsing.
func (o *Option) Enabled() bool { return !o.Disabled }

// Enabled reports whether the command can be selected.
func (c *Command) Enabled() bool { return !c.Disabled }

// Equal compares two names under the schema's case rule.
func (s *Schema) Equal(a, b string) bool {
	return s.Key(a) == s.Key(b)
}

// Key normalizes name for use as a map key under the schema's case rule.
// Without CaseSensitive, names are reduced with Unicode full case folding,
// so every spelling that Equal accepts maps to the same key.
func (s *Schema) Key(name string) string {
	if s.CaseSensitive {
		return name
	}
	return cases.Fold().String(name)
}

// Command returns the command called name.
func (s *Schema) Command(name string) (*Command, bool) {
	for i := range s.Commands {
		if s.Equal(s.Commands[i].Name, name) {
			return &s.Commands[i], true
		}
	}
	return nil, false
}

// Option returns the option of c whose name or alias equals name under the
// case rule of s.
func (s *Schema) Option(c *Command, name string) (*Option, bool) {
	for i := range c.Options {
		o := &c.Options[i]
		for _, n := range o.Names() {
			if s.Equal(n, name) {
				return o, true
			}
		}
	}
	return nil, false
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() Schema {
	out := *s
	out.Commands = make([]Command, len(s.Commands))
	for i, c := range s.Commands {
		c.Options = slices.Clone(c.Options)
		for j := range c.Options {
			o := &c.Options[j]
			o.Aliases = slices.Clone(o.Aliases)
			o.Restrictions = slices.Clone(o.Restrictions)
			o.RestrictionCodes = slices.Clone(o.RestrictionCodes)
			o.RestrictionDescriptions = slices.Clone(o.RestrictionDescriptions)
			o.Incongruous = slices.Clone(o.Incongruous)
			o.Dependencies = slices.Clone(o.Dependencies)
		}
		out.Commands[i] = c
	}
	return out
}
