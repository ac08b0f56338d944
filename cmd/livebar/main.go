// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/livebar/modules/strengthen"
	"github.com/antgroup/livebar/modules/trace"
	"github.com/antgroup/livebar/pkg/command"
	"github.com/antgroup/livebar/pkg/config"
	"github.com/antgroup/livebar/pkg/version"
)

type App struct {
	command.Globals
	Demo    command.Demo    `cmd:"demo" help:"Iterate over a range, printing a line per item below the bar"`
	Manual  command.Manual  `cmd:"manual" help:"Report progress by hand on a scoped bar"`
	Lines   command.Lines   `cmd:"lines" help:"Echo standard input and count the lines"`
	Version command.Version `cmd:"version" help:"Display version information"`
	Debug   bool            `name:"debug" help:"Enable debug mode; analyze timing"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("livebar"),
		kong.Description("livebar - single line progress bar for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	now := time.Now()
	m := strengthen.NewMeasurer("livebar", app.Debug)
	if app.Verbose {
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	m.Close(os.Stderr)
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "livebar: %v\n", err)
	if errors.Is(err, config.ErrInvalidGlyph) || errors.Is(err, config.ErrUnknownKey) || errors.Is(err, command.ErrArgRequired) {
		os.Exit(2)
	}
	os.Exit(1)
}
