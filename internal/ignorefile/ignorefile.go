// Package ignorefile writes catalog templates into ignore files.
//
// Each applied template becomes a block headed by "### <name> ###", which
// is also how a second apply of the same template is detected.
package ignorefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gorewood/ignorecat/internal/catalog"
)

// ErrAlreadyApplied is returned when the target already holds the template block.
var ErrAlreadyApplied = errors.New("template already applied")

// Header returns the block header line for a template name.
func Header(name string) string {
	return "### " + name + " ###"
}

// Contains reports whether content already has the block for name.
func Contains(content, name string) bool {
	header := Header(name)
	for line := range strings.Lines(content) {
		if strings.TrimSpace(line) == header {
			return true
		}
	}
	return false
}

// Render returns existing with the template block appended.
func Render(existing string, tmpl catalog.Template) (string, error) {
	if Contains(existing, tmpl.Name) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyApplied, tmpl.Name)
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(Header(tmpl.Name))
	b.WriteString("\n")
	b.WriteString(tmpl.Content)
	if tmpl.Content != "" && !strings.HasSuffix(tmpl.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Read returns the file content, or "" when the file does not exist.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Apply appends the template block to the file at path, creating the file
// and its directory when needed.
func Apply(path string, tmpl catalog.Template) error {
	existing, err := Read(path)
	if err != nil {
		return err
	}

	updated, err := Render(existing, tmpl)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Diff returns a line diff between the file at path and the file after
// Apply. It returns "" when applying would change nothing.
func Diff(path string, tmpl catalog.Template) (string, error) {
	existing, err := Read(path)
	if err != nil {
		return "", err
	}

	updated, err := Render(existing, tmpl)
	if errors.Is(err, ErrAlreadyApplied) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return LineDiff(existing, updated, path, path+" (with "+tmpl.Name+")"), nil
}

// LineDiff renders a line-oriented diff with "-", "+" and " " prefixes.
func LineDiff(oldText, newText, oldLabel, newLabel string) string {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", oldLabel, newLabel)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffEqual:
		}
		for line := range strings.Lines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(strings.TrimSuffix(line, "\n"))
			b.WriteString("\n")
		}
	}
	return b.String()
}
