// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"time"

	"github.com/antgroup/livebar/pkg/progress"
)

// Manual reports a fraction by hand on a scoped bar.
type Manual struct {
	Steps int           `short:"n" name:"steps" default:"10" help:"Number of steps to report"`
	Delay time.Duration `name:"delay" default:"100ms" help:"Time spent on each half of a step"`
}

func (c *Manual) Run(g *Globals) error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, ErrArgRequired)
	}
	opts, err := g.Options()
	if err != nil {
		return err
	}
	s := progress.Start(g.stdout(), 0, opts...)
	defer s.Close() // nolint
	for i := 0; i < c.Steps; i++ {
		fmt.Fprintf(s, "Doing some computation for i=%d... ", i)
		time.Sleep(c.Delay)
		fmt.Fprintln(s, "Done!")
		time.Sleep(c.Delay)
		if err := s.SetProgress(float64(i+1) / float64(c.Steps)); err != nil {
			return err
		}
	}
	return nil
}
