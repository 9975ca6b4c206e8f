package search

import (
	"fmt"
	"reflect"
	"testing"

	fsutil "github.com/pathsift/pathsift/internal/fs"
)

func syntheticEntries(n int) []fsutil.Entry {
	names := []string{"kilo.md", "kilogram.txt", "kiwi.go", "logfile", "notes.txt", "src", "pkg", "klondike"}
	entries := make([]fsutil.Entry, 0, n)
	for i := 0; i < n; i++ {
		name := names[i%len(names)]
		entries = append(entries, fsutil.Entry{
			Name:     name,
			FullPath: fmt.Sprintf("root/dir%03d/%s", i, name),
			IsDir:    name == "src" || name == "pkg",
		})
	}
	return entries
}

func TestRunParallelMatchesSequential(t *testing.T) {
	entries := syntheticEntries(300)
	base := Options{
		Query: Query{Text: "kilo"},
		Limit: 25,
	}

	seq := base
	sequential := Run(entries, seq)

	for _, workers := range []int{0, 1, 2, 4, 13} {
		par := base
		par.Parallel = true
		par.Workers = workers
		parallel := Run(entries, par)
		if !reflect.DeepEqual(sequential, parallel) {
			t.Fatalf("workers=%d: parallel output diverges from sequential\nseq: %v\npar: %v",
				workers, paths(sequential), paths(parallel))
		}
	}
}

func TestRunOrderIndependence(t *testing.T) {
	entries := syntheticEntries(120)
	reversed := make([]fsutil.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	opts := Options{Query: Query{Text: "kilo"}, Limit: 40, Parallel: true}
	a := Run(entries, opts)
	b := Run(reversed, opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("enumeration order leaked into ranked output\nfwd: %v\nrev: %v", paths(a), paths(b))
	}
}

func TestRunScorePositivity(t *testing.T) {
	entries := syntheticEntries(200)
	results := Run(entries, Options{Query: Query{Text: "kilo"}, Limit: 200, Parallel: true})
	if len(results) == 0 {
		t.Fatal("expected matches in synthetic entries")
	}
	for _, sp := range results {
		if sp.Score <= 0 {
			t.Fatalf("result %q carries non-positive score %d", sp.Entry.FullPath, sp.Score)
		}
	}
}

func TestRunHonorsLimitAndFilter(t *testing.T) {
	entries := syntheticEntries(64)

	got := Run(entries, Options{Query: Query{Text: "kilo"}, Limit: 3})
	if len(got) != 3 {
		t.Fatalf("limit 3 returned %d results", len(got))
	}

	dirsOnly := Run(entries, Options{
		Query:  Query{Text: "k"},
		Filter: TypeFilter{DirsOnly: true},
		Limit:  64,
	})
	for _, sp := range dirsOnly {
		if !sp.Entry.IsDir {
			t.Fatalf("dirs-only result %q is not a directory", sp.Entry.FullPath)
		}
	}

	both := Run(entries, Options{
		Query:  Query{Text: "kilo"},
		Filter: TypeFilter{FilesOnly: true, DirsOnly: true},
		Limit:  64,
	})
	if len(both) != 0 {
		t.Fatalf("files-only+dirs-only matched %d entries, want 0", len(both))
	}
}

func TestRunEmptyInputs(t *testing.T) {
	if got := Run(nil, Options{Query: Query{Text: "kilo"}, Limit: 10}); len(got) != 0 {
		t.Fatalf("no candidates should yield no results, got %d", len(got))
	}
	if got := Run(syntheticEntries(10), Options{Query: Query{Text: ""}, Limit: 10}); len(got) != 0 {
		t.Fatalf("empty query should yield no results, got %d", len(got))
	}
}
