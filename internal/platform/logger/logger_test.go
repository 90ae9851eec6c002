package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestJSONLogger_WritesFieldsAndApp(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "records", Output: &buf})

	log.With(map[string]any{"module": "students"}).Info("students.save", map[string]any{
		"id": "2024001",
		"":   "dropped",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "students.save" {
		t.Fatalf("unexpected message: %#v", entry["message"])
	}
	if entry["app"] != "records" || entry["module"] != "students" || entry["id"] != "2024001" {
		t.Fatalf("missing fields: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be dropped")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	log.Info("hidden", nil)
	log.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	log.Error("shown", map[string]any{"err": errString("boom")})
	if !strings.Contains(buf.String(), `"shown"`) || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	l.Info("nothing happens", nil)
}

type errString string

func (e errString) Error() string { return string(e) }
