// Package settings is the user-controlled store behind the template catalog:
// the starred template names and the user-defined templates.
//
// The store is a YAML file read through viper:
//
//	starred_templates: [Go, macOS]
//	user_templates:
//	  - name: Custom
//	    content: "*.log\n"
//
// A missing file is an empty store. Reads return copies of an in-memory
// snapshot; Watch keeps that snapshot current while the process runs.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyName is returned when a template name is blank.
	ErrEmptyName = errors.New("template name is empty")

	// ErrNotFound is returned when removing a user template that does not exist.
	ErrNotFound = errors.New("user template not found")

	// ErrNoPath is returned by mutations on a store that has no backing file.
	ErrNoPath = errors.New("settings store has no file path")
)

// UserTemplate is a template defined in settings.
type UserTemplate struct {
	Name    string `mapstructure:"name"    yaml:"name"    json:"name"`
	Content string `mapstructure:"content" yaml:"content" json:"content"`
}

// File is the on-disk shape of the settings file.
type File struct {
	StarredTemplates []string       `mapstructure:"starred_templates" yaml:"starred_templates,omitempty"`
	UserTemplates    []UserTemplate `mapstructure:"user_templates"    yaml:"user_templates,omitempty"`
}

func (f File) clone() File {
	return File{
		StarredTemplates: slices.Clone(f.StarredTemplates),
		UserTemplates:    slices.Clone(f.UserTemplates),
	}
}

// Store reads and writes the settings file.
type Store struct {
	path   string
	logger *slog.Logger

	mu   sync.RWMutex
	data File
}

// Open loads the settings at path. An empty path gives a read-only, empty
// store. A missing file is not an error; a malformed one is.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{path: path, logger: logger}
	if path == "" {
		return s, nil
	}

	data, err := load(path)
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

// load reads path with a fresh viper instance so reloads from the watcher
// goroutine never share decoder state with other callers.
func load(path string) (File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var data File
	if err := v.Unmarshal(&data); err != nil {
		return File{}, fmt.Errorf("decoding settings %s: %w", path, err)
	}
	return data, nil
}

// Path returns the backing file path, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// StarredTemplates returns the starred template names.
func (s *Store) StarredTemplates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.StarredTemplates)
}

// UserTemplates returns the user-defined templates in file order.
func (s *Store) UserTemplates() []UserTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.UserTemplates)
}

// Snapshot returns a copy of the whole settings state.
func (s *Store) Snapshot() File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

// Reload re-reads the backing file. On failure the previous snapshot stays.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	data, err := load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Watch reloads the snapshot whenever the settings file changes and then
// calls onChange (which may be nil). It returns immediately; the watch
// lasts for the life of the process.
func (s *Store) Watch(onChange func()) error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.OnConfigChange(func(event fsnotify.Event) {
		s.logger.Debug("settings changed", "path", event.Name, "op", event.Op.String())
		if err := s.Reload(); err != nil {
			s.logger.Warn("reloading settings", "path", s.path, "error", err)
			return
		}
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
	return nil
}

// Star adds name to the starred set. Reports whether anything changed.
func (s *Store) Star(name string) (bool, error) {
	return s.update(name, func(data *File, name string) (bool, error) {
		if slices.Contains(data.StarredTemplates, name) {
			return false, nil
		}
		data.StarredTemplates = append(data.StarredTemplates, name)
		return true, nil
	})
}

// Unstar removes name from the starred set. Reports whether anything changed.
func (s *Store) Unstar(name string) (bool, error) {
	return s.update(name, func(data *File, name string) (bool, error) {
		before := len(data.StarredTemplates)
		data.StarredTemplates = slices.DeleteFunc(data.StarredTemplates, func(starred string) bool {
			return starred == name
		})
		return len(data.StarredTemplates) != before, nil
	})
}

// AddUserTemplate stores tmpl, replacing a user template of the same name.
// Reports true when the name was new.
func (s *Store) AddUserTemplate(tmpl UserTemplate) (bool, error) {
	added := false
	_, err := s.update(tmpl.Name, func(data *File, name string) (bool, error) {
		tmpl.Name = name
		idx := slices.IndexFunc(data.UserTemplates, func(existing UserTemplate) bool {
			return existing.Name == name
		})
		if idx < 0 {
			added = true
			data.UserTemplates = append(data.UserTemplates, tmpl)
			return true, nil
		}
		if data.UserTemplates[idx] == tmpl {
			return false, nil
		}
		data.UserTemplates[idx] = tmpl
		return true, nil
	})
	return added && err == nil, err
}

// RemoveUserTemplate deletes the user template called name.
func (s *Store) RemoveUserTemplate(name string) error {
	_, err := s.update(name, func(data *File, name string) (bool, error) {
		before := len(data.UserTemplates)
		data.UserTemplates = slices.DeleteFunc(data.UserTemplates, func(existing UserTemplate) bool {
			return existing.Name == name
		})
		if len(data.UserTemplates) == before {
			return false, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return true, nil
	})
	return err
}

// update applies mutate to a copy of the snapshot and persists it when
// something changed. Names are trimmed before mutate sees them.
func (s *Store) update(name string, mutate func(data *File, name string) (bool, error)) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyName
	}
	if s.path == "" {
		return false, ErrNoPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	changed, err := mutate(&next, name)
	if err != nil || !changed {
		return false, err
	}

	if err := writeFile(s.path, next); err != nil {
		return false, err
	}
	s.data = next
	return true, nil
}

// writeFile encodes data as YAML and replaces path atomically.
func writeFile(path string, data File) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_ = encoder.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}
