// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendrical displays, matches and resolves ISO calendar fields.
// Dates may be specified as 2006-01-02, 01/02/2006 or Jan-02-2006, times
// as 08[:12[:10]][am|pm] and fields as <name>=<value>, eg. QuarterOfYear=Q2
// or DayOfWeek=tuesday.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: calendrical
summary: display, match and resolve ISO calendar fields
commands:
  - name: fields
    summary: display all of the fields that can be derived from the supplied dates, times and field values
    arguments:
      - <date|time|name=value>
      - ...
  - name: match
    summary: report whether a date and/or time matches all of the supplied field values
    arguments:
      - <date|time>
      - <name=value>
      - ...
  - name: resolve
    summary: merge and resolve the supplied dates, times and field values, reporting all conflicts
    arguments:
      - <date|time|name=value>
      - ...
  - name: resolve-file
    summary: merge and resolve the calendricals specified in a YAML file
    arguments:
      - <file>
`

type FieldsFlags struct {
	cmdutil.LoggingFlags
}

type MatchFlags struct {
	cmdutil.LoggingFlags
}

type ResolveFlags struct {
	cmdutil.LoggingFlags
	Labels bool `subcmd:"labels,true,'display enumerated fields using their labels, eg. Q2 rather than 2'"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(spec)
	cmdSet.Set("fields").MustRunnerAndFlags(fieldsCmd,
		subcmd.MustRegisterFlagStruct(&FieldsFlags{}, nil, nil))
	cmdSet.Set("match").MustRunnerAndFlags(matchCmd,
		subcmd.MustRegisterFlagStruct(&MatchFlags{}, nil, nil))
	cmdSet.Set("resolve").MustRunnerAndFlags(resolveCmd,
		subcmd.MustRegisterFlagStruct(&ResolveFlags{}, nil, nil))
	cmdSet.Set("resolve-file").MustRunnerAndFlags(resolveFileCmd,
		subcmd.MustRegisterFlagStruct(&ResolveFlags{}, nil, nil))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
