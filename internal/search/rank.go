package search

import (
	"container/heap"
	"sort"
	"strings"
)

// Compare is the output ordering for scored paths: score descending, then
// path ascending so equal scores print in a reproducible order. Negative
// means a ranks before b.
func Compare(a, b ScoredPath) int {
	if a.Score != b.Score {
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Entry.FullPath, b.Entry.FullPath)
}

// Rank returns the min(k, len(scored)) best scored paths ordered by Compare.
// Input order is irrelevant; duplicate (score, path) pairs are retained.
func Rank(scored []ScoredPath, k int) []ScoredPath {
	if k <= 0 || len(scored) == 0 {
		return nil
	}
	tc := newTopCollector(k)
	for _, sp := range scored {
		tc.Store(sp)
	}
	return tc.Results()
}

// scoredMinHeap keeps the worst retained result at the root so the collector
// can evict it in O(log k).
type scoredMinHeap []ScoredPath

func (h scoredMinHeap) Len() int           { return len(h) }
func (h scoredMinHeap) Less(i, j int) bool { return Compare(h[i], h[j]) > 0 }
func (h scoredMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *scoredMinHeap) Push(x any) {
	*h = append(*h, x.(ScoredPath))
}

func (h *scoredMinHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

type topCollector struct {
	max  int
	minH scoredMinHeap
}

func newTopCollector(max int) *topCollector {
	tc := &topCollector{
		max:  max,
		minH: make(scoredMinHeap, 0, max),
	}
	heap.Init(&tc.minH)
	return tc
}

func (tc *topCollector) Store(sp ScoredPath) {
	if tc.max <= 0 {
		return
	}

	if tc.minH.Len() < tc.max {
		heap.Push(&tc.minH, sp)
		return
	}

	if Compare(sp, tc.minH[0]) >= 0 {
		return
	}

	heap.Pop(&tc.minH)
	heap.Push(&tc.minH, sp)
}

func (tc *topCollector) Results() []ScoredPath {
	results := make([]ScoredPath, tc.minH.Len())
	copy(results, tc.minH)

	sort.Slice(results, func(i, j int) bool {
		return Compare(results[i], results[j]) < 0
	})

	return results
}
