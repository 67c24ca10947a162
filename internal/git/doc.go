// Package git runs git for the ignorecat CLI and parses what it prints.
//
// Commands shell out to the git executable and capture stdout/stderr.
// Output goes through a Parser; the SimpleParser used by most callers only
// strips surrounding whitespace and control characters:
//
//	root, err := git.RepoRoot(ctx)
//	excludes, err := git.GlobalExcludesFile(ctx)
//	value, err := git.RunParsed(ctx, git.SimpleParser{}, "config", "--get", "core.excludesfile")
//
// # Error Handling
//
// Failures are *output.ExitError values with ExitSystemError, either because
// git is missing or because the command exited non-zero (stderr is included
// in the message).
package git
