// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"iter"

	"github.com/antgroup/livebar/modules/trace"
	"github.com/antgroup/livebar/pkg/progress"
)

// Lines echoes standard input and counts the lines on the bar, the bar is
// indeterminate unless --total is given.
type Lines struct {
	Total int `short:"t" name:"total" help:"Expected number of lines"`
}

func (c *Lines) Run(g *Globals) error {
	opts, err := g.Options()
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(g.stdin())
	it := progress.NewIterator(g.stdout(), scanLines(sc), c.Total, opts...)
	for line := range it.All() {
		fmt.Fprintln(it, line)
	}
	if err := sc.Err(); err != nil {
		return trace.Errorf("read lines: %v", err)
	}
	return nil
}

func scanLines(sc *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}
}
