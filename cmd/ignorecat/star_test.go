package main

import (
	"os"
	"strings"
	"testing"

	"github.com/gorewood/ignorecat/internal/output"
)

func TestStarCommand(t *testing.T) {
	path := isolateConfig(t)

	stdout, _, err := runCommand(t, "star", "python")
	if err != nil {
		t.Fatalf("star error = %v", err)
	}
	if !strings.Contains(stdout, "Starred Python") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("settings not written: %v", err)
	}
	if !strings.Contains(string(data), "Python") {
		t.Errorf("settings = %q, want Python starred", data)
	}

	stdout, _, err = runCommand(t, "star", "Python")
	if err != nil {
		t.Fatalf("second star error = %v", err)
	}
	if !strings.Contains(stdout, "already starred") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestStarCommand_Unknown(t *testing.T) {
	path := isolateConfig(t)

	_, _, err := runCommand(t, "star", "Cobol")
	requireExitCode(t, err, output.ExitUserError)
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("settings file written for unknown template: %v", statErr)
	}
}

func TestUnstarCommand(t *testing.T) {
	isolateConfig(t)

	if _, _, err := runCommand(t, "star", "Rust"); err != nil {
		t.Fatalf("star error = %v", err)
	}

	stdout, _, err := runCommand(t, "unstar", "Rust")
	if err != nil {
		t.Fatalf("unstar error = %v", err)
	}
	if !strings.Contains(stdout, "Unstarred Rust") {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, err = runCommand(t, "unstar", "Rust")
	if err != nil {
		t.Fatalf("second unstar error = %v", err)
	}
	if !strings.Contains(stdout, "not starred") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUnstarCommand_StaleName(t *testing.T) {
	path := isolateConfig(t)
	if err := os.WriteFile(path, []byte("starred_templates: [Gone]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCommand(t, "unstar", "Gone")
	if err != nil {
		t.Fatalf("unstar error = %v", err)
	}
	if !strings.Contains(stdout, "Unstarred Gone") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUnstarCommand_EmptyName(t *testing.T) {
	isolateConfig(t)

	_, _, err := runCommand(t, "unstar", " ")
	requireExitCode(t, err, output.ExitUserError)
}

func TestUnstarCommand_StaleCaseVariant(t *testing.T) {
	path := isolateConfig(t)
	if err := os.WriteFile(path, []byte("starred_templates: [go]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCommand(t, "unstar", "go")
	if err != nil {
		t.Fatalf("unstar error = %v", err)
	}
	if !strings.Contains(stdout, "Unstarred go") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "go") {
		t.Errorf("stale star still in settings: %q", data)
	}
}

func TestUnstarCommand_ResolvesCanonicalName(t *testing.T) {
	isolateConfig(t)

	if _, _, err := runCommand(t, "star", "Go"); err != nil {
		t.Fatalf("star error = %v", err)
	}

	stdout, _, err := runCommand(t, "unstar", "GO")
	if err != nil {
		t.Fatalf("unstar error = %v", err)
	}
	if !strings.Contains(stdout, "Unstarred Go") {
		t.Errorf("stdout = %q", stdout)
	}
}
