package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, map[string]any{"message": "ok", "total": 3}, "json", false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got != `{"message":"ok","total":3}` {
		t.Fatalf("unexpected JSON: %s", got)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, map[string]any{"message": "ok"}, "json", true)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"message\": \"ok\"") {
		t.Fatalf("expected indented output, got %q", buf.String())
	}
}

func TestWriteEDN(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]any{
		"message": "ok",
		"items":   []any{1, "two", true, nil},
	}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := buf.String()
	for _, want := range []string{":message", `"ok"`, ":items", "[1 \"two\" true nil]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in EDN output, got %q", want, got)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{}, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
