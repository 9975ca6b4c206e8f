package search

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	fsutil "github.com/pathsift/pathsift/internal/fs"
)

// Options configures a search run.
type Options struct {
	Query    Query
	Filter   TypeFilter
	Limit    int  // number of results to return
	Parallel bool // fan scoring out across workers
	Workers  int  // worker count, defaults to runtime.NumCPU()
}

// Run scores every entry against the query and returns the top Limit results
// ordered by Compare. Parallel and sequential runs produce identical output:
// the map phase only determines the set of survivors, and Rank imposes a
// total order on it.
func Run(entries []fsutil.Entry, opts Options) []ScoredPath {
	var scored []ScoredPath
	if opts.Parallel {
		scored = scoreParallel(entries, opts)
	} else {
		scored = scoreSequential(entries, opts)
	}
	return Rank(scored, opts.Limit)
}

func scoreSequential(entries []fsutil.Entry, opts Options) []ScoredPath {
	scored := make([]ScoredPath, 0, len(entries))
	for _, entry := range entries {
		if sp, ok := Evaluate(entry, opts.Query, opts.Filter); ok {
			scored = append(scored, sp)
		}
	}
	return scored
}

// scoreParallel splits the entries into one chunk per worker. Workers share
// only the immutable query and filter and write only their own chunk slot,
// so the fan-out needs no locks. Scoring has no failure mode; the errgroup
// provides the join barrier before ranking.
func scoreParallel(entries []fsutil.Entry, opts Options) []ScoredPath {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(entries) {
		workers = len(entries)
	}
	if workers <= 1 {
		return scoreSequential(entries, opts)
	}

	chunkSize := (len(entries) + workers - 1) / workers
	chunks := make([][]ScoredPath, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, len(entries))
		if start >= end {
			break
		}
		part := entries[start:end]
		w := w
		g.Go(func() error {
			out := make([]ScoredPath, 0, len(part))
			for _, entry := range part {
				if sp, ok := Evaluate(entry, opts.Query, opts.Filter); ok {
					out = append(out, sp)
				}
			}
			chunks[w] = out
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	scored := make([]ScoredPath, 0, total)
	for _, chunk := range chunks {
		scored = append(scored, chunk...)
	}
	return scored
}
