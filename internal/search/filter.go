package search

import (
	"path/filepath"
	"strings"

	fsutil "github.com/pathsift/pathsift/internal/fs"
)

// CaseMode selects how query and candidate names are compared.
type CaseMode int

const (
	CaseInsensitive CaseMode = iota
	CaseSensitive
)

// Query is the immutable search input shared by all scoring workers.
type Query struct {
	Text string
	Case CaseMode
}

// fold returns the comparison form of s under the query's case mode. Folding
// affects scoring input only; displayed paths are never altered.
func (q Query) fold(s string) string {
	if q.Case == CaseInsensitive {
		return strings.ToLower(s)
	}
	return s
}

// TypeFilter restricts which entry kinds may produce results. Setting both
// fields excludes everything; that is legal, not an error.
type TypeFilter struct {
	FilesOnly bool
	DirsOnly  bool
}

// ScoredPath pairs an entry with its relevance score.
// Invariant: Score > 0.
type ScoredPath struct {
	Entry fsutil.Entry
	Score int
}

// Evaluate scores a single entry against the query. The second return value
// is false when the entry is excluded by the type filter, has no usable base
// name, or scores zero.
func Evaluate(entry fsutil.Entry, query Query, filter TypeFilter) (ScoredPath, bool) {
	if filter.FilesOnly && !entry.IsFile() {
		return ScoredPath{}, false
	}
	if filter.DirsOnly && !entry.IsDir {
		return ScoredPath{}, false
	}

	name := baseName(entry)
	if name == "" {
		return ScoredPath{}, false
	}

	score := Score(query.fold(query.Text), query.fold(name))
	if score <= 0 {
		return ScoredPath{}, false
	}
	return ScoredPath{Entry: entry, Score: score}, true
}

func baseName(entry fsutil.Entry) string {
	name := entry.Name
	if name == "" {
		name = filepath.Base(entry.FullPath)
	}
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
