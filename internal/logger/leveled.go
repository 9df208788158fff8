package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Leveled adapts a ZapLogger to the key/value style used by retryablehttp.
type Leveled struct {
	Logger ZapLogger
}

func (l Leveled) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues)...)
}

// Info from the HTTP client is a per-request trace, so it is logged at debug.
func (l Leveled) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues)...)
}

func (l Leveled) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues)...)
}

func (l Leveled) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues)...)
}

func toFields(kv []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		if i+1 >= len(kv) {
			fields = append(fields, zap.Any(key, nil))
			break
		}
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	return fields
}
