package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/bundle"
	"github.com/gorewood/ignorecat/internal/catalog"
	"github.com/gorewood/ignorecat/internal/config"
	"github.com/gorewood/ignorecat/internal/output"
	"github.com/gorewood/ignorecat/internal/settings"
)

// app holds the collaborators a command needs.
type app struct {
	logger   *slog.Logger
	settings *settings.Store
	catalog  *catalog.Catalog
}

// newLogger writes text logs to stderr, at debug level with --debug.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if boolFlag(cmd, "debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openApp opens the settings file named by --settings (or the default in
// the config directory) and builds a catalog over the bundled templates.
func openApp(cmd *cobra.Command) (*app, error) {
	logger := newLogger(cmd)

	path := config.SettingsPath(stringFlag(cmd, "settings"))
	if path == "" {
		logger.Warn("no config directory; settings are read-only and empty")
	}

	store, err := settings.Open(path, logger)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading settings: "+err.Error(), err)
	}

	cat := catalog.New(catalog.Config{
		Bundle:   bundle.FS(),
		Manifest: bundle.ManifestPath,
		Settings: store,
		Logger:   logger,
	})

	return &app{logger: logger, settings: store, catalog: cat}, nil
}

// lookupTemplate finds a template or returns a user error.
func (a *app) lookupTemplate(name string) (catalog.Template, error) {
	tmpl, ok := a.catalog.Lookup(name)
	if !ok {
		return catalog.Template{}, output.NewUserError("template not found: " + name)
	}
	return tmpl, nil
}

// settingsError maps a settings store failure to an exit code.
func settingsError(err error) error {
	switch {
	case errors.Is(err, settings.ErrEmptyName), errors.Is(err, settings.ErrNotFound):
		return output.NewUserError(err.Error())
	case errors.Is(err, settings.ErrNoPath):
		return output.NewUserError("no settings file: pass --settings or set " + config.EnvConfigHome)
	default:
		return output.NewSystemErrorWithCause("updating settings: "+err.Error(), err)
	}
}
