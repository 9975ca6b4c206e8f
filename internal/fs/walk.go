package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Diagnostic records a subtree or entry the walk could not read.
type Diagnostic struct {
	Path string
	Err  error
}

// Report carries the entries a walk produced plus diagnostics for anything
// it had to skip.
type Report struct {
	Entries     []Entry
	Diagnostics []Diagnostic
}

// Walk enumerates every file and directory beneath root in pre-order. The
// root itself is not included. A directory that cannot be read contributes a
// diagnostic and its subtree is skipped; the walk continues. Only an
// unreadable root is an error. When root is a regular file, it is the single
// entry of the result.
func Walk(root string) (*Report, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}

	report := &Report{}
	if !info.IsDir() {
		report.Entries = append(report.Entries, newEntry(root, info))
		return report, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}
	report.walkEntries(root, entries)
	return report, nil
}

func (r *Report) walkEntries(dir string, entries []os.DirEntry) {
	for _, d := range entries {
		fullPath := filepath.Join(dir, d.Name())
		info, err := d.Info()
		if err != nil {
			r.Diagnostics = append(r.Diagnostics, Diagnostic{Path: fullPath, Err: err})
			continue
		}
		r.Entries = append(r.Entries, newEntry(fullPath, info))

		if !d.IsDir() {
			continue
		}
		children, err := os.ReadDir(fullPath)
		if err != nil {
			// Continue on error: an unreadable subtree yields fewer
			// candidates, never an aborted walk.
			r.Diagnostics = append(r.Diagnostics, Diagnostic{Path: fullPath, Err: err})
			continue
		}
		r.walkEntries(fullPath, children)
	}
}

func newEntry(path string, info os.FileInfo) Entry {
	return Entry{
		Name:      filepath.Base(path),
		FullPath:  path,
		IsDir:     info.IsDir(),
		IsSymlink: (info.Mode() & os.ModeSymlink) != 0,
		Size:      info.Size(),
		Modified:  info.ModTime(),
		Mode:      info.Mode(),
	}
}
