package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut, prevNoColor := output, color.NoColor
	output, color.NoColor = buf, true
	t.Cleanup(func() {
		output, color.NoColor = prevOut, prevNoColor
		SetDebug(false)
	})
	return buf
}

func TestInfo(t *testing.T) {
	buf := capture(t)

	Info("listening on %s", ":3001")
	assert.Equal(t, "[INFO]  listening on :3001\n", buf.String())
}

func TestWithContext_IncludesRequestID(t *testing.T) {
	buf := capture(t)
	ctx := WithRequestID(context.Background(), "abc-123")

	ErrorWithContext(ctx, "query failed: %v", "boom")
	assert.Contains(t, buf.String(), "[req_id=abc-123] query failed: boom")
	assert.Equal(t, "abc-123", RequestID(ctx))
}

func TestWithContext_NoRequestID(t *testing.T) {
	buf := capture(t)

	WarnWithContext(context.Background(), "slow")
	assert.NotContains(t, buf.String(), "req_id")
	assert.Equal(t, "", RequestID(nil))
}

func TestDebug_Toggle(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	InfoStruct(struct{ Name string }{"hidden"})
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown")
	InfoStruct(struct{ Name string }{"dumped"})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "dumped")
}
