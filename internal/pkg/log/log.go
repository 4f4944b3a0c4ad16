package log

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type ctxKey string

const contextKeyRequestID ctxKey = "request_id"

var (
	output io.Writer = color.Output
	debug  atomic.Bool

	infoTag  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnTag  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorTag = color.New(color.FgRed).SprintFunc()
	debugTag = color.New(color.FgCyan).SprintFunc()
)

// SetDebug toggles Debug and InfoStruct output.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func write(tag string, requestID string, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		fmt.Fprintf(output, "%s [req_id=%s] %s\n", tag, requestID, msg)
		return
	}
	fmt.Fprintf(output, "%s %s\n", tag, msg)
}

// Info log information
func Info(format string, a ...interface{}) {
	write(infoTag("[INFO] "), "", format, a...)
}

// InfoWithContext logs information with the request ID from ctx.
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoTag("[INFO] "), RequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnTag("[WARN] "), "", format, a...)
}

// WarnWithContext logs a warning with the request ID from ctx.
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnTag("[WARN] "), RequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorTag("[Error]"), "", format, a...)
}

// ErrorWithContext logs an error with the request ID from ctx.
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorTag("[Error]"), RequestID(ctx), format, a...)
}

// Debug logs only when debug output is enabled.
func Debug(format string, a ...interface{}) {
	if !debug.Load() {
		return
	}
	write(debugTag("[DEBUG]"), "", format, a...)
}

// InfoStruct dumps values in debug mode.
func InfoStruct(a ...interface{}) {
	if !debug.Load() {
		return
	}
	fmt.Fprint(output, spew.Sdump(a...))
}
