package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/ignorecat/internal/config"
	"github.com/gorewood/ignorecat/internal/output"
)

// runCommand executes a fresh root command with args and returns stdout,
// stderr and the error. Call isolateConfig first when settings are read.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateConfig points the config directory at a fresh temp dir and
// returns the settings file path inside it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigHome, dir)
	return filepath.Join(dir, config.SettingsFile)
}

func requireExitCode(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with exit code %d, got nil", want)
	}
	if got := output.GetExitCode(err); got != want {
		t.Errorf("exit code = %d, want %d (err: %v)", got, want, err)
	}
}

func TestRootCommand_Version(t *testing.T) {
	oldVersion := version
	t.Cleanup(func() { version = oldVersion })
	version = "1.2.3"

	stdout, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "ignorecat") {
		t.Errorf("--version output should contain 'ignorecat': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"ignorecat", "Usage:", "--json", "--settings", "--color", "list", "apply"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	stdout, _, err := runCommand(t, "--json")
	requireExitCode(t, err, output.ExitUserError)

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", stdout)
	}
	if _, ok := result["code"]; !ok {
		t.Errorf("JSON output should contain 'code' field: %s", stdout)
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "settings", "color", "debug"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	isolateConfig(t)
	_, stderr, err := runCommand(t, "list", "--color", "sometimes")
	requireExitCode(t, err, output.ExitUserError)
	if !strings.Contains(stderr, "sometimes") {
		t.Errorf("stderr should name the bad value: %q", stderr)
	}
}

func TestRootCommand_SettingsFlag(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "elsewhere.yaml")

	if _, _, err := runCommand(t, "--settings", path, "star", "Go"); err != nil {
		t.Fatalf("star error = %v", err)
	}

	stdout, _, err := runCommand(t, "--settings", path, "list", "--starred")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(stdout, "Go") {
		t.Errorf("star in --settings file not visible: %q", stdout)
	}

	stdout, _, err = runCommand(t, "list", "--starred")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(stdout, "No templates found") {
		t.Errorf("default settings file should have no stars: %q", stdout)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"dev build", "dev", "none", "unknown", "dev"},
		{"release", "1.0.0", "abcdef1234567", "2026-01-01", "1.0.0 (abcdef1, 2026-01-01)"},
		{"short commit", "1.0.0", "abc", "2026-01-01", "1.0.0 (abc, 2026-01-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, date
			t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
