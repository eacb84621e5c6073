// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"strings"
)

// Type says whether an option must appear on the command line.
type Type uint8

const (
	// Optional options may be omitted.
	Optional Type = iota
	// Required options must be given.
	Required
)

func (t Type) String() string {
	switch t {
	case Optional:
		return "Optional"
	case Required:
		return "Required"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ValueFlags describes how many values an option takes and which ones are
// accepted. The zero value accepts any number of unrestricted values.
type ValueFlags uint16

const (
	// ValueForbidden options are switches and take no value.
	ValueForbidden ValueFlags = 1 << iota
	// ValueRequired options need at least one value when given.
	ValueRequired
	// ValueOptional options may be given with or without a value.
	ValueOptional
	// ValueSingle options take at most one value.
	ValueSingle
	// ValueList options take any number of values.
	ValueList
	// ValueRestricted options only accept values from the restriction list.
	ValueRestricted
	// ValueAllowNumeric additionally lets a restricted option accept
	// non-negative integers.
	ValueAllowNumeric

	valueFlagsAll = ValueForbidden | ValueRequired | ValueOptional |
		ValueSingle | ValueList | ValueRestricted | ValueAllowNumeric
)

var valueFlagNames = []struct {
	flag ValueFlags
	name string
}{
	{ValueForbidden, "Forbidden"},
	{ValueRequired, "Required"},
	{ValueOptional, "Optional"},
	{ValueSingle, "Single"},
	{ValueList, "List"},
	{ValueRestricted, "ListOfRestriction"},
	{ValueAllowNumeric, "AllowNumeric"},
}

// Has reports whether all bits of want are set.
func (f ValueFlags) Has(want ValueFlags) bool {
	return f&want == want
}

func (f ValueFlags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, n := range valueFlagNames {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if rest := f &^ valueFlagsAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint16(rest)))
	}
	return strings.Join(parts, "|")
}

// check returns a description of the first illegal combination in f, or ""
// when f is valid.
func (f ValueFlags) check() string {
	switch {
	case f&^valueFlagsAll != 0:
		return fmt.Sprintf("unknown value flags 0x%x", uint16(f&^valueFlagsAll))
	case f.Has(ValueForbidden) && f != ValueForbidden:
		return fmt.Sprintf("Forbidden cannot be combined with other value flags (%s)", f)
	case f.Has(ValueRequired | ValueOptional):
		return "value flags Required and Optional are mutually exclusive"
	case f.Has(ValueSingle | ValueList):
		return "value flags Single and List are mutually exclusive"
	case f.Has(ValueAllowNumeric) && !f.Has(ValueRestricted):
		return "AllowNumeric requires ListOfRestriction"
	}
	return ""
}
