// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "github.com/yeetrun/argspec/pkg/schema"

// Values of parseState.active that do not refer to an option.
const (
	noActive   = -1 // no option token seen yet
	discarding = -2 // last option token was unknown and ignored
)

// parseState is the per-call state of a parse: which options were given and
// the values collected for each. Slices are indexed like Command.Options.
type parseState struct {
	schema *schema.Schema
	ci     *commandIndex
	active int
	seen   []bool
	values [][]string
}

func newParseState(s *schema.Schema, ci *commandIndex) *parseState {
	n := len(ci.cmd.Options)
	return &parseState{
		schema: s,
		ci:     ci,
		active: noActive,
		seen:   make([]bool, n),
		values: make([][]string, n),
	}
}

// activate resolves an option token (prefix already removed) and makes it
// the target of the values that follow.
func (p *parseState) activate(name, tok string) error {
	cmd := p.ci.cmd
	i, ok := p.ci.byName[p.schema.Key(name)]
	if !ok {
		if p.schema.IgnoreUnknown {
			p.active = discarding
			return nil
		}
		return errorf(KindUnknownOption, cmd.Name, "", tok, "unknown option %q for command %q", tok, cmd.Name)
	}
	o := &cmd.Options[i]
	if p.seen[i] {
		return errorf(KindDuplicateOption, cmd.Name, o.Name, tok, "option %q specified more than once", o.Name)
	}
	if o.Disabled {
		return errorf(KindDisabledOption, cmd.Name, o.Name, tok, "option %q is disabled", o.Name)
	}
	p.seen[i] = true
	p.active = i
	return nil
}

// collect appends a literal value to the active option.
func (p *parseState) collect(value, tok string) error {
	switch p.active {
	case noActive:
		return errorf(KindOrphanValue, p.ci.cmd.Name, "", tok, "value %q is not preceded by an option", value)
	case discarding:
		return nil
	}
	p.values[p.active] = append(p.values[p.active], value)
	return nil
}
