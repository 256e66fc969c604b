package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTime_Success(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithRequestID(context.Background(), "42")

	func() (err error) {
		defer Time(ctx, newBufferLogger(&buf), "pro_load")(&err)
		return nil
	}()

	out := buf.String()
	for _, want := range []string{"operation complete", "req_id=42", "op=pro_load", "dur_ms="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "error=") {
		t.Errorf("unexpected error attribute: %s", out)
	}
}

func TestTime_Failure(t *testing.T) {
	var buf bytes.Buffer

	func() (err error) {
		defer Time(context.Background(), newBufferLogger(&buf), "pro_slice")(&err)
		return errors.New("boom")
	}()

	out := buf.String()
	for _, want := range []string{"level=WARN", "operation failed", "op=pro_slice", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestTime_NilErrPointer(t *testing.T) {
	var buf bytes.Buffer
	Time(context.Background(), newBufferLogger(&buf), "op")(nil)
	if !strings.Contains(buf.String(), "operation complete") {
		t.Errorf("expected completion log, got %s", buf.String())
	}
}
