// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command weekflow prints Monday to Sunday week numbers and week ranges.
package main

import (
	"context"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: weekflow
summary: compute Monday to Sunday week numbers and week ranges
commands:
  - name: number
    summary: print the week number for each date
    arguments:
      - <date>
      - ...
  - name: range
    summary: print the Monday to Sunday range of the week for each date
    arguments:
      - <date>
      - ...
  - name: info
    summary: print the week number, label year and range for each date
    arguments:
      - <date>
      - ...
  - name: weeks
    summary: print every week labeled under the specified year, or those starting in a given month
    arguments:
      - <year>
`

type dateFlags struct {
	cmdutil.LoggingFlags
	Format   string `subcmd:"format,,'output format: text, json or yaml, defaults to text'"`
	Config   string `subcmd:"config,,'optional yaml configuration file'"`
	Fallback string `subcmd:"fallback,,'date, or today, whose week is reported in place of invalid input'"`
}

type yearFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,,'output format: text, json or yaml, defaults to text'"`
	Config string `subcmd:"config,,'optional yaml configuration file'"`
	Month  string `subcmd:"month,,'restrict output to the weeks whose Monday falls in this month, eg. 3 or mar'"`
}

func cli() *subcmd.CommandSetYAML {
	cmd := &command{out: os.Stdout, now: time.Now}
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("number").MustRunnerAndFlags(cmd.number,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(cmd.weekRange,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("info").MustRunnerAndFlags(cmd.info,
		subcmd.MustRegisteredFlagSet(&dateFlags{}))
	cmdSet.Set("weeks").MustRunnerAndFlags(cmd.weeks,
		subcmd.MustRegisteredFlagSet(&yearFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
