package fs

import (
	"os"
	"time"
)

// Entry represents a single file or directory produced by a walk. The
// IsDir/IsSymlink facts are snapshotted when the directory entry is read;
// scoring never re-stats the path.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsFile reports whether the entry is a regular (non-directory) entry.
func (e Entry) IsFile() bool {
	return !e.IsDir
}
