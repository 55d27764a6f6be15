package memory

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/flexprice/shipdiscount/internal/logger"
)

// loggerAdapter routes watermill logs through the application logger
type loggerAdapter struct {
	log *logger.Logger
}

func newLoggerAdapter(log *logger.Logger) watermill.LoggerAdapter {
	return &loggerAdapter{log: log.Named("watermill")}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Errorw(msg, append(toKeysAndValues(fields), "error", err)...)
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Debugw(msg, toKeysAndValues(fields)...)
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debugw(msg, toKeysAndValues(fields)...)
}

func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Tracew(msg, toKeysAndValues(fields)...)
}

func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{log: a.log.With(toKeysAndValues(fields)...)}
}

func toKeysAndValues(fields watermill.LogFields) []interface{} {
	out := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
