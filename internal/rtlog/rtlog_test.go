package rtlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerRespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn, false)
	l.Infof("should not appear")
	l.Warnf("should appear")
	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Fatalf("a sub-threshold log line should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("expected the WARN line to be written, got %q", out)
	}
}

func TestLoggerFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, false)
	l.Errorf("failed: %s (%d)", "oom", 42)
	out := buf.String()
	if !strings.Contains(out, "failed: oom (42)") {
		t.Fatalf("expected formatted message in output, got %q", out)
	}
	if !strings.Contains(out, "ERROR") {
		t.Fatalf("expected the level name in output, got %q", out)
	}
}

func TestResourceDenialAndInternalErrorHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, false)
	l.ResourceDenial("Memory", "budget exceeded")
	l.InternalError("unreachable state")
	out := buf.String()
	if !strings.Contains(out, "resource limit hit: Memory: budget exceeded") {
		t.Fatalf("expected resource denial text, got %q", out)
	}
	if !strings.Contains(out, "internal error: unreachable state") {
		t.Fatalf("expected internal error text, got %q", out)
	}
}
