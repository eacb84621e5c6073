// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yeetrun/argspec/pkg/schema"
)

// check validates the collected options. Per-option rules run for every
// enabled option in declaration order, then relations are evaluated for the
// options that were given.
func (p *parseState) check() error {
	opts := p.ci.cmd.Options
	for i := range opts {
		if opts[i].Disabled {
			continue
		}
		if err := p.checkOption(&opts[i], p.seen[i], p.values[i]); err != nil {
			return err
		}
	}
	for i := range opts {
		if opts[i].Disabled || !p.seen[i] {
			continue
		}
		if err := p.checkRelations(&opts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *parseState) checkOption(o *schema.Option, seen bool, vals []string) error {
	cmd := p.ci.cmd.Name
	if !seen {
		if o.Type == schema.Required {
			return errorf(KindMissingOption, cmd, o.Name, "", "required option %q is missing", o.Name)
		}
		return nil
	}
	f := o.Values
	switch {
	case f.Has(schema.ValueForbidden) && len(vals) > 0:
		return errorf(KindValueForbidden, cmd, o.Name, vals[0], "option %q does not take a value, got %q", o.Name, vals[0])
	case f.Has(schema.ValueRequired) && len(vals) == 0:
		return errorf(KindMissingValue, cmd, o.Name, "", "option %q requires a value", o.Name)
	case f.Has(schema.ValueSingle) && len(vals) > 1:
		return errorf(KindTooManyValues, cmd, o.Name, vals[1], "option %q takes a single value, got %d", o.Name, len(vals))
	}
	if f.Has(schema.ValueRestricted) {
		for _, v := range vals {
			if err := p.checkRestricted(o, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *parseState) checkRestricted(o *schema.Option, v string) error {
	if restrictionIndex(p.schema, o, v) >= 0 {
		return nil
	}
	cmd := p.ci.cmd.Name
	if o.Values.Has(schema.ValueAllowNumeric) {
		switch _, neg, ok := parseInteger(v); {
		case ok && !neg:
			return nil
		case ok && neg:
			return errorf(KindNegativeNumber, cmd, o.Name, v, "option %q does not accept negative number %s", o.Name, v)
		}
		return errorf(KindRestrictedValue, cmd, o.Name, v, "invalid value %q for option %q (valid values: %s, or a non-negative number)", v, o.Name, strings.Join(o.Restrictions, ", "))
	}
	return errorf(KindRestrictedValue, cmd, o.Name, v, "invalid value %q for option %q (valid values: %s)", v, o.Name, strings.Join(o.Restrictions, ", "))
}

func (p *parseState) checkRelations(o *schema.Option) error {
	cmd := p.ci.cmd.Name
	for _, ref := range o.Incongruous {
		if j, ok := p.ci.byName[p.schema.Key(ref)]; ok && p.seen[j] {
			return errorf(KindIncongruous, cmd, o.Name, "", "option %q cannot be combined with %q", o.Name, p.ci.cmd.Options[j].Name)
		}
	}
	for _, ref := range o.Dependencies {
		j, ok := p.ci.byName[p.schema.Key(ref)]
		if !ok {
			return errorf(KindDependency, cmd, o.Name, "", "option %q requires unknown option %q", o.Name, ref)
		}
		if !p.seen[j] {
			return errorf(KindDependency, cmd, o.Name, "", "option %q requires option %q", o.Name, p.ci.cmd.Options[j].Name)
		}
	}
	return nil
}

// restrictionIndex returns the position of v in o.Restrictions, or -1.
func restrictionIndex(s *schema.Schema, o *schema.Option, v string) int {
	for i, r := range o.Restrictions {
		if s.Equal(r, v) {
			return i
		}
	}
	return -1
}

// parseInteger reports whether v is a base-10 int64 literal and whether it
// is negative. Negative literals below the int64 range still count as
// negative numbers; positive ones above it are not numbers.
func parseInteger(v string) (n int64, negative, ok bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	switch {
	case err == nil:
		return n, n < 0, true
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(v, "-"):
		return 0, true, true
	}
	return 0, false, false
}
