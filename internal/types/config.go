package types

import (
	"fmt"
	"strings"
)

type LogLevel string

const (
	// LogLevelTrace sits one step below debug and is used for per-rule evaluation details
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) Validate() error {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return fmt.Errorf("invalid log level: %q", string(l))
	}
}
