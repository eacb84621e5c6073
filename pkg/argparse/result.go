// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"iter"
	"slices"
	"strings"

	"github.com/yeetrun/argspec/pkg/attrtree"
	"github.com/yeetrun/argspec/pkg/schema"
)

// Value is the outcome for one option.
//
// An option that was not given, or given without values, has an empty value.
// A given ValueForbidden option has Flag set. Otherwise Values holds the
// collected values in command-line order.
type Value struct {
	Seen   bool
	Flag   bool
	Values []string
}

// IsEmpty reports whether v carries neither a flag nor values.
func (v Value) IsEmpty() bool {
	return !v.Flag && len(v.Values) == 0
}

// String returns "true" for a flag, the values joined by a single space, or
// "" for an empty value.
func (v Value) String() string {
	if v.Flag {
		return "true"
	}
	return strings.Join(v.Values, " ")
}

// Any returns the value as "", true or []string.
func (v Value) Any() any {
	switch {
	case v.Flag:
		return true
	case len(v.Values) > 0:
		return slices.Clone(v.Values)
	}
	return ""
}

// Result is a successful parse. It covers every enabled option of the
// selected command and is owned by the caller.
type Result struct {
	// Command is the canonical name of the selected command.
	Command string

	schema *schema.Schema
	ci     *commandIndex
	values []Value // indexed like Command.Options
}

func (p *parseState) result() *Result {
	opts := p.ci.cmd.Options
	r := &Result{
		Command: p.ci.cmd.Name,
		schema:  p.schema,
		ci:      p.ci,
		values:  make([]Value, len(opts)),
	}
	for i := range opts {
		if opts[i].Disabled || !p.seen[i] {
			continue
		}
		v := Value{Seen: true}
		if opts[i].Values.Has(schema.ValueForbidden) {
			v.Flag = true
		} else {
			v.Values = p.values[i]
		}
		r.values[i] = v
	}
	return r
}

// Options returns the canonical names of all enabled options of the command
// in declaration order.
func (r *Result) Options() []string {
	var names []string
	for name := range r.All() {
		names = append(names, name)
	}
	return names
}

// All iterates over the enabled options and their values in declaration
// order.
func (r *Result) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, o := range r.ci.cmd.Options {
			if o.Disabled {
				continue
			}
			if !yield(o.Name, r.values[i]) {
				return
			}
		}
	}
}

func (r *Result) lookup(name string) (*schema.Option, int, bool) {
	i, ok := r.ci.byName[r.schema.Key(name)]
	if !ok || r.ci.cmd.Options[i].Disabled {
		return nil, 0, false
	}
	return &r.ci.cmd.Options[i], i, true
}

// Get returns a copy of the value of the option called name (canonical
// name or alias). ok is false for names that are unknown or disabled.
func (r *Result) Get(name string) (v Value, ok bool) {
	_, i, ok := r.lookup(name)
	if !ok {
		return Value{}, false
	}
	v = r.values[i]
	v.Values = slices.Clone(v.Values)
	return v, true
}

// Has reports whether the option was given on the command line.
func (r *Result) Has(name string) bool {
	v, _ := r.Get(name)
	return v.Seen
}

// Bool reports whether a ValueForbidden option was given.
func (r *Result) Bool(name string) bool {
	v, _ := r.Get(name)
	return v.Flag
}

// String returns the option's value as text; see Value.String.
func (r *Result) String(name string) string {
	v, _ := r.Get(name)
	return v.String()
}

// Strings returns a copy of the values collected for the option.
func (r *Result) Strings(name string) []string {
	v, _ := r.Get(name)
	return slices.Clone(v.Values)
}

// Codes maps the values of a ValueRestricted option to numbers. A
// restriction entry maps to its RestrictionCodes element, or to its position
// when the option has no codes; a numeric literal maps to itself. ok is false
// for unknown or unrestricted options.
func (r *Result) Codes(name string) (codes []int64, ok bool) {
	o, i, ok := r.lookup(name)
	if !ok || !o.Values.Has(schema.ValueRestricted) {
		return nil, false
	}
	for _, v := range r.values[i].Values {
		if j := restrictionIndex(r.schema, o, v); j >= 0 {
			if len(o.RestrictionCodes) > 0 {
				codes = append(codes, o.RestrictionCodes[j])
			} else {
				codes = append(codes, int64(j))
			}
			continue
		}
		n, _, _ := parseInteger(v)
		codes = append(codes, n)
	}
	return codes, true
}

// Describe returns the restriction descriptions of the option's values. Values
// without a description map to "".
func (r *Result) Describe(name string) []string {
	o, i, ok := r.lookup(name)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range r.values[i].Values {
		d := ""
		if j := restrictionIndex(r.schema, o, v); j >= 0 && len(o.RestrictionDescriptions) > 0 {
			d = o.RestrictionDescriptions[j]
		}
		out = append(out, d)
	}
	return out
}

// Tree exports the result as
//
//	result
//	  command = <name>
//	  options/
//	    <option> = "" | true | []string
func (r *Result) Tree() *attrtree.Node {
	root := attrtree.New("result")
	root.Set("command", r.Command)
	opts := root.Child("options")
	for name, v := range r.All() {
		opts.Set(name, v.Any())
	}
	return root
}
