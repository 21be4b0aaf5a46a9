package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "debug", false)

	ctx := NewContext(context.Background(), With("request_id", "req-1"))
	WithContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), "request_id=req-1") {
		t.Fatalf("expected request_id in output, got %q", buf.String())
	}

	buf.Reset()
	WithContext(context.Background()).Info("plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("default logger should not carry request_id, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn", true)

	Info("dropped")
	Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"msg":"kept"`) {
		t.Fatalf("unexpected output %q", out)
	}
}
