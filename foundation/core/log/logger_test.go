// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for level filtering, context fields, formatters and
//              mdwerror integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-11-02

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  LevelDebug,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func decodeLine(t *testing.T, line []byte) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(line), &data); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return data
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON).WithLevel(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Audit("always")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if decodeLine(t, []byte(lines[0]))["message"] != "shown" {
		t.Errorf("first line = %q", lines[0])
	}
	if decodeLine(t, []byte(lines[1]))["level"] != "audit" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON).
		WithField("component", "shortcuts").
		WithRequestID("req-1")

	logger.Info("loaded", Int("count", 3), String("component", "override"))

	data := decodeLine(t, buf.Bytes())
	if data["request_id"] != "req-1" {
		t.Errorf("request_id = %v", data["request_id"])
	}
	if data["count"] != float64(3) {
		t.Errorf("count = %v", data["count"])
	}
	if data["component"] != "override" {
		t.Errorf("call fields should win over context fields, got %v", data["component"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v", data["logger"])
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, FormatJSON)
	_ = parent.WithField("child", true)

	parent.Info("parent")
	if _, ok := decodeLine(t, buf.Bytes())["child"]; ok {
		t.Error("parent logger picked up child field")
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "medium severity logs as warn",
			err:       mdwerror.New("truncated").WithCode(mdwerror.CodeMalformedInput).WithDetail("offset", 9),
			wantLevel: "warn",
			wantCode:  "MALFORMED_INPUT",
		},
		{
			name:      "high severity logs as error",
			err:       mdwerror.New("launch failed").WithCode(mdwerror.CodeExternalServiceError),
			wantLevel: "error",
			wantCode:  "EXTERNAL_SERVICE_ERROR",
		},
		{
			name:      "plain error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, FormatJSON).LogError(tt.err)

			data := decodeLine(t, buf.Bytes())
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, FormatJSON).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTextFormatter_Format(t *testing.T) {
	entry := NewEntry(LevelInfo, "parsed")
	entry.Timestamp = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	entry.Logger = "cmdline"
	entry.RequestID = "abc"
	entry.Fields["b"] = 2
	entry.Fields["a"] = 1

	got, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "03:04:05 [INF] {cmdline} (req=abc) parsed [a=1 b=2]\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	entry := NewEntry(LevelWarn, "kept old table")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelWarn.Color()) {
		t.Errorf("expected color prefix, got %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"audit", LevelAudit, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer_Stop(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON)

	timer := logger.StartTimer("jsontok.Parse").WithField("bytes", 42)
	if timer.Stop() < 0 {
		t.Error("negative elapsed time")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	data := decodeLine(t, buf.Bytes())
	if data["operation"] != "jsontok.Parse" {
		t.Errorf("operation = %v", data["operation"])
	}
	if data["message"] != "jsontok.Parse completed" {
		t.Errorf("message = %v", data["message"])
	}
}

func TestTimer_StopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON)

	logger.StartTimer("shortcuts.Load").StopWithError(errors.New("boom"))

	data := decodeLine(t, buf.Bytes())
	if data["level"] != "warn" || data["error"] != "boom" {
		t.Errorf("unexpected entry: %v", data)
	}
}
