// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"time"
)

var (
	selectedSpinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

const (
	spinnerStep = 100 * time.Millisecond
)

// spinnerFrame picks the frame for the elapsed time. Frames only move when a
// redraw happens, there is no ticker behind them.
func spinnerFrame(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return selectedSpinner[int(elapsed/spinnerStep)%len(selectedSpinner)]
}
