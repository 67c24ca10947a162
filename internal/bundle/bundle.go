// Package bundle holds the ignore templates shipped inside the binary.
//
// The manifest (templates.list) names one template file per line. Files
// under Global/ are editor and operating system templates meant for the
// global excludes file; the rest are language and framework templates.
package bundle

import (
	"embed"
	"io/fs"
)

// ManifestPath is the manifest location inside FS.
const ManifestPath = "templates.list"

//go:embed templates
var files embed.FS

// FS returns the bundled templates rooted at the manifest's directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		// fs.Sub only fails for invalid paths; "templates" is valid.
		panic(err)
	}
	return sub
}
