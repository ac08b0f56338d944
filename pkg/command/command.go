// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/livebar/modules/trace"
	"github.com/antgroup/livebar/pkg/config"
	"github.com/antgroup/livebar/pkg/progress"
	"github.com/antgroup/livebar/pkg/version"
	"github.com/sirupsen/logrus"
)

type Globals struct {
	Verbose   bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version   VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	Config    string      `short:"c" name:"config" help:"Path to the bar configuration file" type:"path"`
	Values    []string    `short:"X" name:"set" sep:"none" help:"Override default configuration, format: <key>=<value>"`
	ExpandEnv bool        `name:"expand-env" help:"Expand environment variables in the configuration file"`
	// Stdout and Stdin default to the process streams.
	Stdout io.Writer `kong:"-"`
	Stdin  io.Reader `kong:"-"`
}

func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Verbose && !trace.IsDebugMode() {
		return
	}
	trace.NewDebuger(true).DbgPrint(format, args...)
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) stdin() io.Reader {
	if g.Stdin != nil {
		return g.Stdin
	}
	return os.Stdin
}

// Options loads the configuration, applies -X overrides and returns the
// renderer options for it.
func (g *Globals) Options() ([]progress.Option, error) {
	cfg, err := config.Load(g.Config, g.ExpandEnv)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Overwrite(g.Values); err != nil {
		return nil, fmt.Errorf("override config: %w", err)
	}
	g.DbgPrint("bar: fill=%q empty=%q brackets=%q%q eta=%v smooth=%v interval=%v",
		cfg.Bar.Fill, cfg.Bar.Empty, cfg.Bar.Left, cfg.Bar.Right, cfg.Bar.ShowETA, cfg.Bar.Smooth, cfg.Bar.MinInterval)
	return append(cfg.Options(), progress.WithLogger(logrus.StandardLogger())), nil
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}

var (
	ErrArgRequired = errors.New("arg required")
)
