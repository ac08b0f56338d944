// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/antgroup/livebar/pkg/version"
)

type Version struct {
	BuildOptions bool `name:"build-options" help:"Also print build options"`
	System       bool `name:"system" help:"Also print host and terminal information"`
	JSON         bool `short:"j" name:"json" help:"Data will be returned in JSON format"`
}

type versionReport struct {
	*version.BuildInfo
	System *version.SystemInfo `json:"system,omitempty"`
}

func (c *Version) Run(g *Globals) error {
	w := g.stdout()
	r := versionReport{BuildInfo: version.GetBuildInfo(c.BuildOptions)}
	if c.System {
		u, err := version.Uname(w)
		if err != nil {
			return fmt.Errorf("uname: %w", err)
		}
		r.System = u
	}
	if c.JSON {
		return json.NewEncoder(w).Encode(&r)
	}
	fmt.Fprintf(w, "livebar %s (%s), built %v\n", r.Version, r.Commit, r.Time)
	if u := r.System; u != nil {
		fmt.Fprintf(w, "system:    %s %s %s\nnode:      %s\nprocessor: %s\n", u.Name, u.Release, u.Machine, u.Node, u.Processor)
		fmt.Fprintf(w, "terminal:  interactive=%v vt=%v width=%d color=%s\n",
			u.Terminal.Interactive, u.Terminal.VT, u.Terminal.Width, u.Terminal.Color)
	}
	if !c.BuildOptions {
		return nil
	}
	fmt.Fprintf(w, "arch: %s\nos:   %s\ngo:   %s\n", r.Arch, r.OS, r.GoVersion)
	keys := make([]string, 0, len(r.Settings))
	for k := range r.Settings {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s:\n  %s\n", k, r.Settings[k])
	}
	return nil
}
