package lsh

import (
	"hash/fnv"
	"strings"
)

const (
	// numHashes is the MinHash signature width. 128 permutations keep the
	// Jaccard estimate within a few percent for short strings.
	numHashes = 128
	shingleN  = 3
)

// normalize lowercases and collapses whitespace so signatures are stable
// across formatting differences in cell values.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// shingles returns the character n-gram set of the normalized string. Short
// strings fall back to a single shingle of the whole value.
func shingles(s string) map[string]struct{} {
	s = normalize(s)
	set := make(map[string]struct{})
	if len(s) < shingleN {
		if s != "" {
			set[s] = struct{}{}
		}
		return set
	}
	for i := 0; i+shingleN <= len(s); i++ {
		set[s[i:i+shingleN]] = struct{}{}
	}
	return set
}

// seededHash mixes a shingle with a permutation seed via FNV-1a. FNV keeps
// signatures identical across processes, which matters for persisted indexes.
func seededHash(shingle string, seed uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(shingle))
	return h.Sum64()
}

// Signature computes the MinHash signature of a value.
func Signature(value string) []uint64 {
	sig := make([]uint64, numHashes)
	for i := range sig {
		sig[i] = ^uint64(0)
	}
	for sh := range shingles(value) {
		for i := 0; i < numHashes; i++ {
			if h := seededHash(sh, uint64(i)); h < sig[i] {
				sig[i] = h
			}
		}
	}
	return sig
}

// estimateJaccard is the fraction of agreeing signature positions.
func estimateJaccard(a, b []uint64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	match := 0
	for i := range a {
		if a[i] == b[i] {
			match++
		}
	}
	return float64(match) / float64(len(a))
}
