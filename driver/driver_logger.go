package driver

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

type driverLogger struct {
	logger *log.Logger
}

func newDriverLogger(l *log.Logger) driverLogger {
	return driverLogger{logger: l}
}

// Log logs SDK messages at debug level on the preconfigured logger.
func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintln(args...)))
}
