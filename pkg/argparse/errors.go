// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
)

// ErrInvalidArgs matches every *Error via errors.Is.
var ErrInvalidArgs = errors.New("invalid arguments")

// Kind classifies why an argument vector was rejected.
type Kind int

const (
	KindNoCommand Kind = iota + 1
	KindUnknownCommand
	KindDisabledCommand
	KindMalformedOption
	KindUnknownOption
	KindDuplicateOption
	KindDisabledOption
	KindOrphanValue
	KindMissingOption
	KindValueForbidden
	KindMissingValue
	KindTooManyValues
	KindRestrictedValue
	KindNegativeNumber
	KindIncongruous
	KindDependency
)

var kindNames = map[Kind]string{
	KindNoCommand:       "no-command",
	KindUnknownCommand:  "unknown-command",
	KindDisabledCommand: "disabled-command",
	KindMalformedOption: "malformed-option",
	KindUnknownOption:   "unknown-option",
	KindDuplicateOption: "duplicate-option",
	KindDisabledOption:  "disabled-option",
	KindOrphanValue:     "orphan-value",
	KindMissingOption:   "missing-option",
	KindValueForbidden:  "value-forbidden",
	KindMissingValue:    "missing-value",
	KindTooManyValues:   "too-many-values",
	KindRestrictedValue: "restricted-value",
	KindNegativeNumber:  "negative-number",
	KindIncongruous:     "incongruous",
	KindDependency:      "dependency",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned when an argument vector does not satisfy the schema.
// Msg is meant for the user; the other fields identify what was wrong.
type Error struct {
	Kind    Kind
	Command string // selected command, empty before one is known
	Option  string // canonical option name, if any
	Token   string // offending raw token or value, if any
	Msg     string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidArgs
}

func errorf(kind Kind, command, option, token, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Command: command,
		Option:  option,
		Token:   token,
		Msg:     fmt.Sprintf(format, args...),
	}
}
