// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/yeetrun/argspec/pkg/schema"

// demoSchema is the schema argument vectors are checked against.
func demoSchema() schema.Schema {
	return schema.Schema{
		StripQuotes: true,
		Commands: []schema.Command{
			{
				Name:        "COMMAND",
				Description: "Collect free-form values",
				Options: []schema.Option{
					{Name: "t1", Aliases: []string{"test1"}, Description: "First value list"},
					{Name: "test2", Description: "Second value list"},
					{Name: "test3", Description: "Third value list"},
					{Name: "test4", Description: "Fourth value list"},
				},
			},
			{
				Name:        "COPY",
				Description: "Copy sources to a destination",
				Options: []schema.Option{
					{
						Name:        "src",
						Aliases:     []string{"s", "source"},
						Description: "Files to copy",
						Type:        schema.Required,
						Values:      schema.ValueRequired | schema.ValueList,
					},
					{
						Name:        "dst",
						Aliases:     []string{"d", "target"},
						Description: "Destination directory",
						Values:      schema.ValueRequired | schema.ValueSingle,
					},
					{
						Name:        "verbose",
						Aliases:     []string{"v"},
						Description: "Report every file",
						Values:      schema.ValueForbidden,
					},
					{
						Name:        "quiet",
						Aliases:     []string{"q"},
						Description: "Report nothing",
						Values:      schema.ValueForbidden,
						Incongruous: []string{"verbose"},
					},
					{
						Name:                    "mode",
						Aliases:                 []string{"m"},
						Description:             "Copy mode or numeric permission",
						Values:                  schema.ValueRestricted | schema.ValueAllowNumeric | schema.ValueSingle,
						Restrictions:            []string{"A", "B", "C"},
						RestrictionCodes:        []int64{1, 2, 3},
						RestrictionDescriptions: []string{"archive", "backup", "clone"},
					},
					{
						Name:         "force",
						Aliases:      []string{"f"},
						Description:  "Overwrite an existing destination",
						Values:       schema.ValueForbidden,
						Dependencies: []string{"dst"},
					},
				},
			},
		},
	}
}
