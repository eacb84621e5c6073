// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"strings"

	"github.com/yeetrun/argspec/pkg/schema"
)

// Reserved tokens.
const (
	// StopScan turns option recognition off. Later tokens are values, even
	// when they start with the option prefix.
	StopScan = "--"
	// StartScan turns option recognition back on. It is honored even while
	// scanning is off.
	StartScan = "++"
)

type scanMode uint8

const (
	scanOn scanMode = iota
	scanOff
)

func (m scanMode) String() string {
	if m == scanOff {
		return "off"
	}
	return "on"
}

type tokenClass uint8

const (
	tokStartScan tokenClass = iota
	tokStopScan
	tokEmptyOption
	tokOption
	tokLiteral
)

func (c tokenClass) String() string {
	switch c {
	case tokStartScan:
		return "start-scan"
	case tokStopScan:
		return "stop-scan"
	case tokEmptyOption:
		return "empty-option"
	case tokOption:
		return "option"
	}
	return "literal"
}

// scanner classifies tokens following the command selector. Its only state
// is the scan mode; the zero value starts with scanning on.
type scanner struct {
	mode scanMode
}

// next classifies tok and applies the mode transition it causes.
func (s *scanner) next(tok string) tokenClass {
	switch {
	case tok == StartScan:
		s.mode = scanOn
		return tokStartScan
	case s.mode == scanOff:
		return tokLiteral
	case tok == StopScan:
		s.mode = scanOff
		return tokStopScan
	case tok == schema.OptionPrefix:
		return tokEmptyOption
	case strings.HasPrefix(tok, schema.OptionPrefix):
		return tokOption
	}
	return tokLiteral
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
