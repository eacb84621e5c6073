// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse tokenizes argument vectors and checks them against a
// schema.
//
//	e, err := argparse.New(s) // validates s; returns a *schema.Error (wrapped) on failure
//	if err != nil {
//	    return err
//	}
//	res, err := e.Parse(os.Args[1:])
//	var argErr *argparse.Error
//	if errors.As(err, &argErr) {
//	    fmt.Fprintln(os.Stderr, argErr.Msg)
//	}
//
// # Tokens
//
// The first argument selects the command. Each following argument is one of:
//   - "++": turns option scanning on (recognized in every state)
//   - "--": turns option scanning off (recognized only while scanning)
//   - "-name": while scanning, starts option name (or one of its aliases)
//   - anything else: a value for the most recent option
//
// With StripQuotes, one matching pair of surrounding ' or " is removed from
// the command selector and from values. A quoted value such as "-5" is
// therefore a value even while scanning.
//
// # Checks
//
// After the last token every enabled option is checked in declaration order
// for presence, value count and restriction membership, then incongruous and
// dependency relations are evaluated. The first failure is returned; results
// are never partial.
package argparse
