// Package wordprep builds a dictionary file for the word store out of a
// directory of raw word lists.
package wordprep

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

const (
	// Number of hash buckets words are partitioned into
	numBuckets = 256
)

// hashWord hashes a word to a bucket number using FNV-1a
func hashWord(word string, numBuckets int) int {
	h := fnv.New32a()
	h.Write([]byte(word))
	return int(h.Sum32() % uint32(numBuckets))
}

// Prepare merges every file in dirPath into one sorted list of distinct
// words.
//
// Words are normalized and filtered while reading, partitioned into hash
// buckets so that equal words always land in the same bucket, and each
// bucket is then deduplicated by a pool of workers.
func Prepare(dirPath string, opts Options, progressCallback func(string)) ([]string, error) {
	files, err := ListFiles(dirPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found in directory %s", dirPath)
	}

	// Phase 1: Partition words into buckets
	if progressCallback != nil {
		progressCallback("Phase 1: Partitioning words into buckets...")
	}

	buckets, err := partitionFiles(files, opts, progressCallback)
	if err != nil {
		return nil, err
	}

	// Phase 2: Deduplicate each bucket
	if progressCallback != nil {
		progressCallback("Phase 2: Deduplicating buckets...")
	}

	words, err := dedupeBuckets(buckets, opts.Workers)
	if err != nil {
		return nil, err
	}

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("Prepared %d distinct words", len(words)))
	}

	return words, nil
}

// partitionFiles reads all input files into in-memory buckets
func partitionFiles(files []string, opts Options, progressCallback func(string)) ([][]string, error) {
	buckets := make([][]string, numBuckets)
	totalWords := 0

	for fileIdx, filename := range files {
		if progressCallback != nil {
			progressCallback(fmt.Sprintf("  Reading file %d/%d: %s", fileIdx+1, len(files), filepath.Base(filename)))
		}

		words, err := LoadFile(filename, opts)
		if err != nil {
			return nil, err
		}

		for _, w := range words {
			b := hashWord(w, numBuckets)
			buckets[b] = append(buckets[b], w)
		}
		totalWords += len(words)
	}

	if progressCallback != nil {
		progressCallback(fmt.Sprintf("  Partitioning complete: %d words kept from %d files", totalWords, len(files)))
	}

	return buckets, nil
}

// dedupeBuckets removes duplicates bucket by bucket using a worker pool
// and returns the merged, sorted result.
func dedupeBuckets(buckets [][]string, workers int) ([]string, error) {
	workerPoolSize := workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}

	results := make([][]string, len(buckets))

	var eg errgroup.Group
	eg.SetLimit(workerPoolSize)
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		eg.Go(func() error {
			results[i] = dedupe(bucket)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var all []string
	for _, r := range results {
		all = append(all, r...)
	}

	// Sort words alphabetically for consistent output
	slices.Sort(all)

	return all, nil
}

// dedupe removes duplicate words while preserving first-seen order.
func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))

	for _, w := range words {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			result = append(result, w)
		}
	}

	return result
}
