package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gorewood/ignorecat/internal/output"
)

// Run executes a git command and returns its trimmed stdout.
func Run(ctx context.Context, args ...string) (string, error) {
	return RunParsed(ctx, SimpleParser{}, args...)
}

// RunParsed executes a git command and parses its stdout with parser.
func RunParsed[T any](ctx context.Context, parser Parser[T], args ...string) (T, error) {
	raw, err := RunRaw(ctx, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return parser.Parse(raw), nil
}

// RunRaw executes a git command and returns stdout untouched.
// Returns an *output.ExitError on failure.
func RunRaw(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
		}

		errMsg := Trim(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return stdout.String(), nil
}

// IsRepo checks if the current directory is inside a git repository.
func IsRepo(ctx context.Context) bool {
	_, err := Run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the root directory of the current git repository.
func RepoRoot(ctx context.Context) (string, error) {
	root, err := Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// GlobalExcludesFile returns the path git reads global ignore rules from:
// core.excludesFile when configured, otherwise git's default of
// $XDG_CONFIG_HOME/git/ignore or ~/.config/git/ignore.
func GlobalExcludesFile(ctx context.Context) (string, error) {
	configured, err := Run(ctx, "config", "--global", "--type=path", "--get", "core.excludesFile")
	if err == nil && configured != "" {
		return configured, nil
	}

	// git config exits 1 when the key is unset; anything else is real.
	var exitErr *exec.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.ExitCode() == 1) {
		return "", err
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}
	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return "", output.NewSystemErrorWithCause("cannot locate home directory", homeErr)
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}
