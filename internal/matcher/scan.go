package matcher

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"word-finder/internal/constraint"
	"word-finder/internal/wordstore"
)

const (
	// DefaultChunkSize is the number of candidate words handed to one
	// worker.
	DefaultChunkSize = 16 * 1024
)

// Result is the outcome of a scan: every matching word in store order.
type Result struct {
	Total   int
	Matches []string
}

// Sample returns at most limit matches from the front of the result. A
// negative limit returns all of them.
func (r Result) Sample(limit int) []string {
	if limit < 0 || limit >= len(r.Matches) {
		return r.Matches
	}
	return r.Matches[:limit]
}

// Scanner applies a constraint set to a whole store.
//
// Only words of the requested length are visited. When the candidate list
// is larger than ChunkSize it is cut into contiguous chunks that are scanned
// concurrently and stitched back together in order, so the result is the
// same as a sequential scan.
type Scanner struct {
	// Workers bounds the number of chunks scanned at once. Zero or less
	// means runtime.NumCPU().
	Workers int

	// ChunkSize is the number of words per chunk. Zero or less means
	// DefaultChunkSize.
	ChunkSize int
}

// Filter scans store with the default Scanner.
func Filter(store *wordstore.Store, set constraint.Set) Result {
	return Scanner{}.Filter(store, set)
}

// Filter returns every word of store matching set, in store order.
func (sc Scanner) Filter(store *wordstore.Store, set constraint.Set) Result {
	set = set.Normalized()
	candidates := store.WithLength(set.WordLength)

	chunkSize := sc.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	workers := sc.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var matches []string
	if workers == 1 || candidates.Len() <= chunkSize {
		matches = scanView(candidates, set, nil)
	} else {
		matches = scanChunks(candidates, set, chunkSize, workers)
	}

	if matches == nil {
		matches = []string{}
	}
	return Result{Total: len(matches), Matches: matches}
}

func scanView(v wordstore.View, set constraint.Set, dst []string) []string {
	for w := range v.All() {
		if matchNormalized(w, set) {
			dst = append(dst, w)
		}
	}
	return dst
}

func scanChunks(v wordstore.View, set constraint.Set, chunkSize, workers int) []string {
	numChunks := (v.Len() + chunkSize - 1) / chunkSize
	results := make([][]string, numChunks)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < numChunks; i++ {
		lo := i * chunkSize
		hi := min(lo+chunkSize, v.Len())
		eg.Go(func() error {
			results[i] = scanView(v.Slice(lo, hi), set, nil)
			return nil
		})
	}
	// Chunk scans never fail.
	_ = eg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]string, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches
}
