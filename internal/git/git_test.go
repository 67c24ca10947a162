package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gorewood/ignorecat/internal/output"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates an empty repository and changes into it.
func initRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	if out, err := exec.Command("git", "init", "--quiet", dir).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	t.Chdir(dir)
	return dir
}

func TestRun(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	out, err := Run(ctx, "version")
	if err != nil {
		t.Fatalf("Run(version) error = %v", err)
	}
	if out == "" || out[len(out)-1] == '\n' {
		t.Errorf("Run(version) = %q, want trimmed non-empty output", out)
	}

	_, err = Run(ctx, "invalid-command-that-does-not-exist")
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run(invalid) error should be *output.ExitError, got %T", err)
	}
	if exitErr.Code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", exitErr.Code, output.ExitSystemError)
	}
}

func TestRunRaw_KeepsWhitespace(t *testing.T) {
	requireGit(t)

	raw, err := RunRaw(context.Background(), "version")
	if err != nil {
		t.Fatalf("RunRaw error = %v", err)
	}
	if raw == Trim(raw) {
		t.Errorf("RunRaw(version) = %q, expected a trailing newline", raw)
	}
}

func TestRepoRoot(t *testing.T) {
	t.Run("in git repo", func(t *testing.T) {
		dir := initRepo(t)

		if !IsRepo(context.Background()) {
			t.Error("IsRepo() = false inside a fresh repository")
		}

		root, err := RepoRoot(context.Background())
		if err != nil {
			t.Fatalf("RepoRoot() error = %v", err)
		}
		want, _ := filepath.EvalSymlinks(dir)
		got, _ := filepath.EvalSymlinks(root)
		if got != want {
			t.Errorf("RepoRoot() = %q, want %q", got, want)
		}
	})

	t.Run("not in git repo", func(t *testing.T) {
		requireGit(t)
		t.Chdir(t.TempDir())
		t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(mustGetwd(t)))

		if IsRepo(context.Background()) {
			t.Error("IsRepo() = true outside a repository")
		}

		_, err := RepoRoot(context.Background())
		if output.GetExitCode(err) != output.ExitSystemError {
			t.Errorf("RepoRoot() error = %v, want system error", err)
		}
	})
}

func TestGlobalExcludesFile(t *testing.T) {
	requireGit(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	t.Run("default location", func(t *testing.T) {
		got, err := GlobalExcludesFile(context.Background())
		if err != nil {
			t.Fatalf("GlobalExcludesFile() error = %v", err)
		}
		if want := filepath.Join(home, ".config", "git", "ignore"); got != want {
			t.Errorf("GlobalExcludesFile() = %q, want %q", got, want)
		}
	})

	t.Run("xdg location", func(t *testing.T) {
		xdg := filepath.Join(home, "xdg")
		t.Setenv("XDG_CONFIG_HOME", xdg)

		got, err := GlobalExcludesFile(context.Background())
		if err != nil {
			t.Fatalf("GlobalExcludesFile() error = %v", err)
		}
		if want := filepath.Join(xdg, "git", "ignore"); got != want {
			t.Errorf("GlobalExcludesFile() = %q, want %q", got, want)
		}
	})

	t.Run("configured", func(t *testing.T) {
		configured := filepath.Join(home, "my-excludes")
		gitconfig := "[core]\n\texcludesFile = " + configured + "\n"
		if err := os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Remove(filepath.Join(home, ".gitconfig")) })

		got, err := GlobalExcludesFile(context.Background())
		if err != nil {
			t.Fatalf("GlobalExcludesFile() error = %v", err)
		}
		if got != configured {
			t.Errorf("GlobalExcludesFile() = %q, want %q", got, configured)
		}
	})
}

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return wd
}
