package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mhpenta/nanobanana"
)

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{"name": "test", "value": 123}
	if err := Output(data, OutputOptions{Format: FormatJSON, Writer: &buf}); err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if result["name"] != "test" {
		t.Errorf("name = %v, want %q", result["name"], "test")
	}
}

func TestOutput_YAML(t *testing.T) {
	var buf bytes.Buffer

	data := map[string]any{"name": "test"}
	if err := Output(data, OutputOptions{Writer: &buf}); err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if !strings.Contains(buf.String(), "name: test") {
		t.Errorf("Output should contain 'name: test', got: %s", buf.String())
	}
}

func TestOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Output("x", OutputOptions{Format: "xml", Writer: &buf}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriteReport_SingleLine(t *testing.T) {
	text := "a <b> & c"
	reports := []nanobanana.Report{
		nanobanana.Success(&nanobanana.Result{Files: []string{"a&b.png"}, Model: "m", Text: &text}),
		nanobanana.Failure(errors.New("boom")),
	}

	for _, r := range reports {
		var buf bytes.Buffer
		if err := WriteReport(&buf, r); err != nil {
			t.Fatalf("WriteReport error: %v", err)
		}

		out := buf.String()
		if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
			t.Errorf("expected exactly one line, got %q", out)
		}
		if strings.Contains(out, `\u0026`) || strings.Contains(out, `\u003c`) {
			t.Errorf("HTML escaping should be off: %q", out)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded["ok"] != r.OK {
			t.Errorf("ok = %v, want %v", decoded["ok"], r.OK)
		}
	}
}
