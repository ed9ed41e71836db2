package model

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/bzsweep/pkg/domain/types"
)

// ArchiveEntry is a compressed file found under the sweep root.
type ArchiveEntry struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

// NewArchiveEntry returns an entry for path, or false if path does not carry the archive suffix.
// Only one suffix is stripped, so "x.bz2.bz2" maps to "x.bz2".
func NewArchiveEntry(path string) (ArchiveEntry, bool) {
	if !IsArchiveName(filepath.Base(path)) {
		return ArchiveEntry{}, false
	}
	return ArchiveEntry{
		Path:       path,
		OutputPath: strings.TrimSuffix(path, types.ArchiveSuffix),
	}, true
}

// IsArchiveName reports whether a file name is a candidate archive. A bare ".bz2" has no stem and is not.
func IsArchiveName(name string) bool {
	return len(name) > len(types.ArchiveSuffix) && strings.HasSuffix(name, types.ArchiveSuffix)
}
