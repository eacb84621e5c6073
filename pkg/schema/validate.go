// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks s for internal consistency and returns a private deep copy
// of it with the HELP command added when the caller did not declare one.
//
// Commands are checked in order and options depth-first; the first violation
// is returned as an *Error and no schema is returned with it.
func Validate(s Schema) (*Schema, error) {
	out := s.Clone()
	if _, ok := out.Command(HelpCommand); !ok {
		out.Commands = append(out.Commands, Command{
			Name:        HelpCommand,
			Description: "Show the available commands",
		})
	}

	seen := make(map[string]string, len(out.Commands))
	for i := range out.Commands {
		c := &out.Commands[i]
		if msg := checkName(c.Name); msg != "" {
			return nil, &Error{Command: c.Name, Rule: RuleName, Msg: "command name " + msg}
		}
		key := out.Key(c.Name)
		if prev, ok := seen[key]; ok {
			return nil, &Error{Command: c.Name, Rule: RuleDuplicate, Msg: fmt.Sprintf("command name collides with %q", prev)}
		}
		seen[key] = c.Name
		if err := out.validateCommand(c); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (s *Schema) validateCommand(c *Command) *Error {
	if s.Equal(c.Name, HelpCommand) && len(c.Options) > 0 {
		return &Error{Command: c.Name, Rule: RuleHelp, Msg: "the HELP command cannot declare options"}
	}

	owner := make(map[string]string)
	for i := range c.Options {
		o := &c.Options[i]
		if err := validateOption(o); err != nil {
			err.Command = c.Name
			return err
		}
		for _, n := range o.Names() {
			if msg := checkName(n); msg != "" {
				return &Error{Command: c.Name, Option: o.Name, Rule: RuleName, Msg: fmt.Sprintf("name %q: %s", n, msg)}
			}
			key := s.Key(n)
			if prev, ok := owner[key]; ok {
				return &Error{Command: c.Name, Option: o.Name, Rule: RuleDuplicate, Msg: fmt.Sprintf("name %q is already used by option %q", n, prev)}
			}
			owner[key] = o.Name
		}
	}

	// References are resolved after every name is known so that forward
	// references work.
	for i := range c.Options {
		o := &c.Options[i]
		for _, rel := range []struct {
			kind string
			refs []string
		}{
			{"incongruous", o.Incongruous},
			{"dependency", o.Dependencies},
		} {
			for _, ref := range rel.refs {
				if err := s.checkReference(c, o, rel.kind, ref); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateOption(o *Option) *Error {
	if o.Type != Optional && o.Type != Required {
		return &Error{Option: o.Name, Rule: RuleType, Msg: fmt.Sprintf("invalid option type %s", o.Type)}
	}
	if msg := o.Values.check(); msg != "" {
		return &Error{Option: o.Name, Rule: RuleValueFlags, Msg: msg}
	}
	if o.Values.Has(ValueRestricted) && len(o.Restrictions) == 0 {
		return &Error{Option: o.Name, Rule: RuleRestrictions, Msg: "ListOfRestriction requires a non-empty restriction list"}
	}
	if n := len(o.RestrictionCodes); n > 0 && n != len(o.Restrictions) {
		return &Error{Option: o.Name, Rule: RuleRestrictions, Msg: fmt.Sprintf("restriction list has %d entries but %d numeric codes", len(o.Restrictions), n)}
	}
	if n := len(o.RestrictionDescriptions); n > 0 && n != len(o.Restrictions) {
		return &Error{Option: o.Name, Rule: RuleRestrictions, Msg: fmt.Sprintf("restriction list has %d entries but %d descriptions", len(o.Restrictions), n)}
	}
	return nil
}

func (s *Schema) checkReference(c *Command, o *Option, kind, ref string) *Error {
	if s.Equal(ref, o.Name) {
		return &Error{Command: c.Name, Option: o.Name, Rule: RuleReference, Msg: fmt.Sprintf("%s reference to itself", kind)}
	}
	for i := range c.Options {
		target := &c.Options[i]
		if !s.Equal(target.Name, ref) {
			continue
		}
		if target.Disabled {
			return &Error{Command: c.Name, Option: o.Name, Rule: RuleReference, Msg: fmt.Sprintf("%s reference to disabled option %q", kind, target.Name)}
		}
		return nil
	}
	return &Error{Command: c.Name, Option: o.Name, Rule: RuleReference, Msg: fmt.Sprintf("%s reference to unknown option %q", kind, ref)}
}

func checkName(name string) string {
	switch {
	case name == "":
		return "is empty"
	case strings.HasPrefix(name, OptionPrefix):
		return fmt.Sprintf("must not start with %q", OptionPrefix)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return "must not contain whitespace"
	}
	return ""
}
