package domain

import (
	"strings"
	"time"
)

// DatabaseFile describes an embedded database file in the data directory.
type DatabaseFile struct {
	// Name is the file name relative to the data directory.
	Name string

	// Path is the full path on disk.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the last modification time.
	ModTime time.Time
}

// IsEmpty returns true if the file holds no pages yet.
func (f DatabaseFile) IsEmpty() bool {
	return f.Size == 0
}

// sidecarSuffixes are the auxiliary files SQLite keeps next to a database.
var sidecarSuffixes = []string{"-wal", "-shm", "-journal"}

// SidecarSuffixes returns the suffixes of SQLite's auxiliary files.
func SidecarSuffixes() []string {
	out := make([]string, len(sidecarSuffixes))
	copy(out, sidecarSuffixes)
	return out
}

// IsSidecar returns true if name is a SQLite auxiliary file.
func IsSidecar(name string) bool {
	for _, s := range sidecarSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// ValidateName rejects a blank database name, which would address the
// data directory itself. Names are otherwise used verbatim.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	return nil
}
