// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema describes the commands and options a program accepts and
// checks such descriptions for consistency.
//
// A Schema is plain data built by the caller:
//
//	s := schema.Schema{
//	    StripQuotes: true,
//	    Commands: []schema.Command{{
//	        Name: "COPY",
//	        Options: []schema.Option{
//	            {Name: "src", Type: schema.Required, Values: schema.ValueRequired | schema.ValueList},
//	            {Name: "dst", Type: schema.Required, Values: schema.ValueRequired | schema.ValueSingle},
//	            {Name: "verbose", Aliases: []string{"v"}, Values: schema.ValueForbidden},
//	            {Name: "quiet", Aliases: []string{"q"}, Values: schema.ValueForbidden, Incongruous: []string{"verbose"}},
//	        },
//	    }},
//	}
//	validated, err := schema.Validate(s)
//
// Validate reports the first violated rule as an *Error. The returned schema
// is a private copy and is never modified afterwards, so it can be shared by
// any number of goroutines.
//
// # Value flags
//
// ValueFlags combine freely subject to these rules:
//   - Forbidden cannot be combined with any other flag
//   - Required and Optional are mutually exclusive
//   - Single and List are mutually exclusive
//   - AllowNumeric requires ListOfRestriction (ValueRestricted)
//
// # Relations
//
// Incongruous and Dependencies hold canonical option names of the same
// command. Relations are directed: they are evaluated for the declaring
// option only, so a symmetric exclusion is declared on one side and still
// rejects both orders of appearance.
package schema
