package trace

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf logs the message with the caller location and returns it as an error.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.Error(fn, ":", line, " ", msg)
	return errors.New(msg)
}

var (
	debugMode bool
)

// EnableDebugMode turns on DbgPrint output and debug level logging.
func EnableDebugMode() {
	debugMode = true
	logrus.SetLevel(logrus.DebugLevel)
}

func IsDebugMode() bool {
	return debugMode
}
