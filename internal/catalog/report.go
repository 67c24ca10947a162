package catalog

import (
	"errors"
	"slices"
)

// Load warnings recorded in a LoadReport.
var (
	ErrManifestUnavailable = errors.New("template manifest unavailable")
	ErrEntryUnresolved     = errors.New("manifest entry does not resolve to a file")
	ErrContentUnreadable   = errors.New("template content unreadable")
	ErrDuplicateEntry      = errors.New("duplicate manifest entry")
)

// LoadStatus summarizes how the bundled templates loaded.
type LoadStatus int

const (
	// LoadComplete means every manifest entry became a template.
	LoadComplete LoadStatus = iota
	// LoadPartial means some entries were skipped or read empty.
	LoadPartial
	// LoadFailed means the manifest could not be read at all.
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadComplete:
		return "complete"
	case LoadPartial:
		return "partial"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s LoadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LoadReport describes the bundled load. Warnings wrap one of the Err*
// sentinels above.
type LoadReport struct {
	Status   LoadStatus
	Loaded   int
	Warnings []error
}

func (r *LoadReport) warn(err error) {
	r.Warnings = append(r.Warnings, err)
	if r.Status == LoadComplete {
		r.Status = LoadPartial
	}
}

func (r *LoadReport) fail(err error) {
	r.Warnings = append(r.Warnings, err)
	r.Status = LoadFailed
}

func (r LoadReport) clone() LoadReport {
	r.Warnings = slices.Clone(r.Warnings)
	return r
}
