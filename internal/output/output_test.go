package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.Success(map[string]any{"status": "starred", "name": "Go"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["status"] != "starred" || result["name"] != "Go" {
		t.Errorf("result = %v", result)
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewUserError(`template "Nope" not found`))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != `template "Nope" not found` {
		t.Errorf("error = %v", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_SuccessAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	if err := printer.Success(map[string]any{"message": "Starred Go"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	printer.Error(NewSystemError("settings unreadable"))

	if out.String() != "Starred Go\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: settings unreadable") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_Warn(t *testing.T) {
	var human bytes.Buffer
	NewPrinter(&human, false, false).Warn("%d bundled entries skipped", 2)
	if human.String() != "Warning: 2 bundled entries skipped\n" {
		t.Errorf("human warn = %q", human.String())
	}

	var structured bytes.Buffer
	NewPrinter(&structured, true, false).Warn("skipped %s", "Global/Gone.gitignore")
	var result map[string]any
	if err := json.Unmarshal(structured.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if result["warning"] != "skipped Global/Gone.gitignore" {
		t.Errorf("warning = %v", result["warning"])
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"NAME", "KIND"}, [][]string{
		{"Go", "starred"},
		{"JetBrains", "global"},
	})

	want := "NAME       KIND   \n" +
		"Go         starred\n" +
		"JetBrains  global \n"
	if buf.String() != want {
		t.Errorf("table =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrinter_TableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Table(nil, [][]string{{"x"}})
	if buf.Len() != 0 {
		t.Errorf("Table without headers should print nothing, got %q", buf.String())
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).KeyValue("Origin", "root")
	if buf.String() != "Origin: root\n" {
		t.Errorf("KeyValue = %q", buf.String())
	}
}

func TestErrorJSON_Format(t *testing.T) {
	var result map[string]any
	if err := json.Unmarshal(ErrorJSON("boom", ExitSystemError), &result); err != nil {
		t.Fatalf("ErrorJSON produced invalid JSON: %v", err)
	}
	if result["error"] != "boom" || int(result["code"].(float64)) != ExitSystemError {
		t.Errorf("ErrorJSON = %v", result)
	}
}
