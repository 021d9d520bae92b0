package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(zerolog.New(&buf))

	logger.Info("sent",
		String("path", "/messages/send"),
		Int("status", 200),
		Bool("ok", true),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("boom")),
		Any("tags", []string{"a"}),
	)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}

	if line["message"] != "sent" || line["level"] != "info" {
		t.Errorf("message/level = %v/%v", line["message"], line["level"])
	}
	if line["path"] != "/messages/send" {
		t.Errorf("path = %v", line["path"])
	}
	if line["status"] != float64(200) {
		t.Errorf("status = %v", line["status"])
	}
	if line["ok"] != true {
		t.Errorf("ok = %v", line["ok"])
	}
	if line["error"] != "boom" {
		t.Errorf("error = %v", line["error"])
	}
	if _, ok := line["took"]; !ok {
		t.Error("duration field missing")
	}
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("hidden", String("k", "v"))
	if buf.Len() != 0 {
		t.Errorf("debug line written below level: %q", buf.String())
	}

	logger.Warn("shown")
	if buf.Len() == 0 {
		t.Error("warn line not written")
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x", String("k", "v"))
	l.Error("y", Err(errors.New("z")))
}
