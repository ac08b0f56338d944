// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"time"

	"github.com/antgroup/livebar/pkg/progress"
)

// Demo iterates over a range and prints a line for every item while the bar
// is shown below.
type Demo struct {
	Count       int           `short:"n" name:"count" default:"10" help:"Number of items to iterate over"`
	Delay       time.Duration `name:"delay" default:"100ms" help:"Time spent on each half of an item"`
	Description string        `short:"d" name:"description" help:"Text shown in front of the bar"`
}

func (c *Demo) Run(g *Globals) error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: %w", c.Count, ErrArgRequired)
	}
	opts, err := g.Options()
	if err != nil {
		return err
	}
	if len(c.Description) != 0 {
		opts = append(opts, progress.WithDescription(c.Description))
	}
	w := g.stdout()
	fmt.Fprintln(w, "This is a text printed before the progress bar.")
	it := progress.Count(w, c.Count, opts...)
	for i := range it.All() {
		fmt.Fprintf(it, "Doing some computation for i=%d... ", i)
		time.Sleep(c.Delay)
		fmt.Fprintln(it, "Done!")
		time.Sleep(c.Delay)
	}
	fmt.Fprintln(w, "This is a text printed after the progress bar.")
	return nil
}
