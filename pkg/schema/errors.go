// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every *Error via errors.Is.
var ErrInvalid = errors.New("invalid schema")

// Rule names the schema rule an Error reports.
type Rule string

const (
	RuleType         Rule = "type"
	RuleValueFlags   Rule = "value-flags"
	RuleRestrictions Rule = "restrictions"
	RuleName         Rule = "name"
	RuleDuplicate    Rule = "duplicate"
	RuleReference    Rule = "reference"
	RuleHelp         Rule = "help"
)

// Error is returned when a schema contradicts itself. It is only produced
// while validating, never while parsing arguments.
type Error struct {
	Command string // offending command, if any
	Option  string // offending option, if any
	Rule    Rule
	Msg     string
}

func (e *Error) Error() string {
	switch {
	case e.Command != "" && e.Option != "":
		return fmt.Sprintf("schema: command %q, option %q: %s", e.Command, e.Option, e.Msg)
	case e.Command != "":
		return fmt.Sprintf("schema: command %q: %s", e.Command, e.Msg)
	}
	return "schema: " + e.Msg
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}
