package lsh

import (
	"hash/fnv"
	"sort"
	"sync"
)

const (
	// Banding parameters: 32 bands of 4 rows over a 128-wide signature put
	// the collision threshold near Jaccard 0.4.
	numBands = 32
	bandRows = numHashes / numBands
)

// Entry is one indexed cell value with its provenance.
type Entry struct {
	Table  string
	Column string
	Value  string

	Signature []uint64
}

// Match is a query hit ranked by estimated Jaccard similarity.
type Match struct {
	Table      string
	Column     string
	Value      string
	Similarity float64
}

// Index is a MinHash LSH index over distinct cell values of one database.
// Lookups are lock-free after Build/Load; Add is guarded for builders.
type Index struct {
	mu      sync.RWMutex
	Entries []Entry
	// Buckets maps band number to band-hash to entry offsets.
	Buckets []map[uint64][]int
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	buckets := make([]map[uint64][]int, numBands)
	for i := range buckets {
		buckets[i] = make(map[uint64][]int)
	}
	return &Index{Buckets: buckets}
}

func bandHash(sig []uint64, band int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range sig[band*bandRows : (band+1)*bandRows] {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Add indexes one cell value.
func (ix *Index) Add(table, column, value string) {
	sig := Signature(value)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	offset := len(ix.Entries)
	ix.Entries = append(ix.Entries, Entry{Table: table, Column: column, Value: value, Signature: sig})
	for band := 0; band < numBands; band++ {
		key := bandHash(sig, band)
		ix.Buckets[band][key] = append(ix.Buckets[band][key], offset)
	}
}

// Len returns the number of indexed values.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.Entries)
}

// Query returns up to topN values similar to the keyword, best first.
// Values below minSimilarity are dropped.
func (ix *Index) Query(keyword string, topN int, minSimilarity float64) []Match {
	if topN <= 0 {
		return nil
	}
	sig := Signature(keyword)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	seen := make(map[int]struct{})
	var matches []Match
	for band := 0; band < numBands; band++ {
		for _, offset := range ix.Buckets[band][bandHash(sig, band)] {
			if _, dup := seen[offset]; dup {
				continue
			}
			seen[offset] = struct{}{}
			entry := ix.Entries[offset]
			sim := estimateJaccard(sig, entry.Signature)
			if sim < minSimilarity {
				continue
			}
			matches = append(matches, Match{
				Table:      entry.Table,
				Column:     entry.Column,
				Value:      entry.Value,
				Similarity: sim,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Value < matches[j].Value
	})
	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}
