package term

import (
	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on ANSI escape processing for a console
// handle. Cygwin and msys ptys already understand escape sequences.
func enableVirtualTerminal(fd uintptr) error {
	if !IsNativeTerminal(fd) {
		return nil
	}
	h := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
