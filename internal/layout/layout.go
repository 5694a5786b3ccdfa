// Package layout composes the acceptance-test paths derived from the
// project version. Composition is pure string work; nothing is checked on
// disk unless Missing is called explicitly.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the pair of search-path entries added for the acceptance suite.
type Paths struct {
	ResourceDir string
	ArchivePath string
}

// Entries returns the paths in the order they are appended to the variable.
func (p Paths) Entries() []string {
	return []string{p.ResourceDir, p.ArchivePath}
}

// Missing returns the entries that do not exist on disk.
func (p Paths) Missing() []string {
	var missing []string
	for _, e := range p.Entries() {
		if _, err := os.Stat(e); err != nil {
			missing = append(missing, e)
		}
	}
	return missing
}

// Layout describes where the resources and the versioned archive live
// relative to the working directory.
type Layout struct {
	ResourceSegments []string `yaml:"resource_segments"`
	ArchiveDir       string   `yaml:"archive_dir"`
	ArchivePrefix    string   `yaml:"archive_prefix"`
	ArchiveExt       string   `yaml:"archive_ext"`
}

// Default returns the RemoteSwingLibrary project layout.
func Default() Layout {
	return Layout{
		ResourceSegments: []string{"src", "test", "robotframework", "acceptance", "webstart"},
		ArchiveDir:       "target",
		ArchivePrefix:    "remoteswinglibrary",
		ArchiveExt:       "jar",
	}
}

// ArchiveName formats the archive filename for version.
func (l Layout) ArchiveName(version string) string {
	return fmt.Sprintf("%s-%s.%s", l.ArchivePrefix, version, l.ArchiveExt)
}

// Compose builds the resource directory and archive path under cwd.
func (l Layout) Compose(version, cwd string) Paths {
	res := append([]string{cwd}, l.ResourceSegments...)
	return Paths{
		ResourceDir: filepath.Join(res...),
		ArchivePath: filepath.Join(cwd, l.ArchiveDir, l.ArchiveName(version)),
	}
}

// Compose builds the default layout's paths for version under cwd.
func Compose(version, cwd string) Paths {
	return Default().Compose(version, cwd)
}
