// Package catalog lists the ignore templates available to the user.
//
// Templates come from two places. Bundled templates are discovered through
// a manifest in a read-only fs.FS, once per Catalog, and cached. User
// templates are read from the settings store on every call, so edits made
// while the process runs show up immediately. Each template records its
// origin; starring is a separate flag that only changes the displayed
// classification.
package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/gorewood/ignorecat/internal/settings"
)

// Settings is the part of the settings store the catalog reads.
type Settings interface {
	StarredTemplates() []string
	UserTemplates() []settings.UserTemplate
}

// Config configures a Catalog.
type Config struct {
	// Bundle holds the manifest and the bundled template files.
	// A nil Bundle means there are no bundled templates.
	Bundle fs.FS

	// Manifest is the manifest path inside Bundle.
	Manifest string

	// Settings supplies starred names and user templates. Nil reads as empty.
	Settings Settings

	// Logger receives load failures. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Catalog merges bundled and user-defined templates. It is safe for
// concurrent use.
type Catalog struct {
	bundle   fs.FS
	manifest string
	settings Settings
	logger   *slog.Logger

	mu      sync.Mutex
	loaded  bool
	bundled []Template
	report  LoadReport
}

// New creates a Catalog. Nothing is read until the first query.
func New(cfg Config) *Catalog {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		bundle:   cfg.Bundle,
		manifest: cfg.Manifest,
		settings: cfg.Settings,
		logger:   logger,
	}
}

// ListTemplates returns bundled and user templates sorted by name.
//
// A user template replaces a bundled template with exactly the same name.
// Starred flags reflect the starred set at the time of the call. Load
// failures never surface here; see Bundled for the load report.
func (c *Catalog) ListTemplates() []Template {
	starred := c.starredSet()
	bundled, _ := c.loadBundled()

	templates := make([]Template, 0, len(bundled))
	index := make(map[string]int, len(bundled))
	for _, tmpl := range bundled {
		tmpl.Starred = starred[tmpl.Name]
		index[tmpl.Name] = len(templates)
		templates = append(templates, tmpl)
	}

	for _, tmpl := range c.userTemplates() {
		tmpl.Starred = starred[tmpl.Name]
		if idx, ok := index[tmpl.Name]; ok {
			if templates[idx].Bundled() {
				c.logger.Debug("user template overrides bundled", "name", tmpl.Name)
				templates[idx] = tmpl
			}
			continue
		}
		index[tmpl.Name] = len(templates)
		templates = append(templates, tmpl)
	}

	Sort(templates)
	return templates
}

// UserTemplates returns a fresh snapshot of the user-defined templates in
// settings order, with starred flags applied. Entries without a name are
// dropped.
func (c *Catalog) UserTemplates() []Template {
	starred := c.starredSet()
	templates := c.userTemplates()
	for i := range templates {
		templates[i].Starred = starred[templates[i].Name]
	}
	return templates
}

// Bundled returns the cached bundled templates, loading them on first use,
// together with the report from that load.
func (c *Catalog) Bundled() ([]Template, LoadReport) {
	starred := c.starredSet()
	bundled, report := c.loadBundled()
	for i := range bundled {
		bundled[i].Starred = starred[bundled[i].Name]
	}
	return bundled, report
}

// Lookup finds a template by exact name, falling back to a
// case-insensitive match.
func (c *Catalog) Lookup(name string) (Template, bool) {
	templates := c.ListTemplates()
	if idx := slices.IndexFunc(templates, func(t Template) bool { return t.Name == name }); idx >= 0 {
		return templates[idx], true
	}
	if idx := slices.IndexFunc(templates, func(t Template) bool { return strings.EqualFold(t.Name, name) }); idx >= 0 {
		return templates[idx], true
	}
	return Template{}, false
}

// StarredName resolves name to the entry kept in the starred set: name
// itself when it is starred, otherwise the name of the template Lookup
// finds. A name that matches nothing comes back trimmed but unchanged.
func (c *Catalog) StarredName(name string) string {
	name = strings.TrimSpace(name)
	if c.starredSet()[name] {
		return name
	}
	if tmpl, ok := c.Lookup(name); ok {
		return tmpl.Name
	}
	return name
}

// Reset drops the bundled cache so the next query reloads the manifest.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.bundled = nil
	c.report = LoadReport{}
}

// loadBundled returns a copy of the bundled cache, populating it once.
func (c *Catalog) loadBundled() ([]Template, LoadReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		c.bundled, c.report = c.readBundle()
		c.loaded = true
		c.logReport()
	}
	return slices.Clone(c.bundled), c.report.clone()
}

// readBundle walks the manifest. Unresolvable or unreadable entries are
// recorded and skipped; an unreadable manifest yields an empty set.
func (c *Catalog) readBundle() ([]Template, LoadReport) {
	var report LoadReport
	if c.bundle == nil {
		report.fail(fmt.Errorf("%w: no bundle configured", ErrManifestUnavailable))
		return nil, report
	}

	manifest, err := fs.ReadFile(c.bundle, c.manifest)
	if err != nil {
		report.fail(fmt.Errorf("%w: %w", ErrManifestUnavailable, err))
		return nil, report
	}

	var templates []Template
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(manifest))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tmpl, err := c.readEntry(line, &report)
		if err != nil {
			report.warn(err)
			continue
		}
		if seen[tmpl.Name] {
			report.warn(fmt.Errorf("%w: %s", ErrDuplicateEntry, line))
			continue
		}
		seen[tmpl.Name] = true
		templates = append(templates, tmpl)
	}
	if err := scanner.Err(); err != nil {
		report.warn(fmt.Errorf("%w: %w", ErrManifestUnavailable, err))
	}

	report.Loaded = len(templates)
	return templates, report
}

// readEntry resolves one manifest line. A file that resolves but cannot
// be read still produces a template, with empty content.
func (c *Catalog) readEntry(line string, report *LoadReport) (Template, error) {
	resource := strings.TrimPrefix(path.Clean("/"+line), "/")
	if !fs.ValidPath(resource) {
		return Template{}, fmt.Errorf("%w: %s", ErrEntryUnresolved, line)
	}

	info, err := fs.Stat(c.bundle, resource)
	if err != nil || info.IsDir() {
		return Template{}, fmt.Errorf("%w: %s", ErrEntryUnresolved, line)
	}

	content, err := fs.ReadFile(c.bundle, resource)
	if err != nil {
		report.warn(fmt.Errorf("%w: %s: %w", ErrContentUnreadable, resource, err))
		content = nil
	}

	return FromBundled(resource, string(content))
}

func (c *Catalog) logReport() {
	if c.report.Status == LoadFailed {
		c.logger.Warn("bundled templates unavailable", "error", errors.Join(c.report.Warnings...))
		return
	}
	for _, w := range c.report.Warnings {
		c.logger.Debug("skipped bundled template", "reason", w)
	}
	c.logger.Debug("bundled templates loaded", "count", c.report.Loaded, "status", c.report.Status.String())
}

func (c *Catalog) starredSet() map[string]bool {
	if c.settings == nil {
		return nil
	}
	names := c.settings.StarredTemplates()
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func (c *Catalog) userTemplates() []Template {
	if c.settings == nil {
		return nil
	}

	users := c.settings.UserTemplates()
	templates := make([]Template, 0, len(users))
	seen := make(map[string]bool, len(users))
	for _, user := range users {
		tmpl, err := FromUser(user)
		if err != nil {
			c.logger.Warn("skipping user template", "error", err)
			continue
		}
		if seen[tmpl.Name] {
			continue
		}
		seen[tmpl.Name] = true
		templates = append(templates, tmpl)
	}
	return templates
}
