// Package wordmap implements the map task: it counts the words of one input
// range and routes each distinct word to a bucket by hash.
package wordmap

import (
	"sort"

	"github.com/zeebo/xxh3"

	"github.com/andreyflyagin/wordcounter/internal/merge"
	"github.com/andreyflyagin/wordcounter/internal/partition"
)

// Tokenize calls fn for every maximal run of ASCII letters in data, folded to
// lower case. The slice passed to fn is reused between calls.
func Tokenize(data []byte, fn func(word []byte)) {
	var word []byte
	for pos := 0; pos < len(data); {
		for pos < len(data) && !partition.IsAlpha(data[pos]) {
			pos++
		}

		word = word[:0]
		for pos < len(data) && partition.IsAlpha(data[pos]) {
			word = append(word, partition.ToLower(data[pos]))
			pos++
		}

		if len(word) > 0 {
			fn(word)
		}
	}
}

// Bucket returns the bucket in [0, n) that owns word.
func Bucket(word string, n int) int {
	return int(xxh3.HashString(word) % uint64(n))
}

// Count tokenizes data[r.Start:r.End], counts every word and returns buckets
// shards, one per bucket index, each sorted by word. The input is only read,
// so any number of Count calls may share data.
func Count(data []byte, r partition.Range, buckets int) []merge.Shard {
	counts := make(map[string]int)
	Tokenize(data[r.Start:r.End], func(word []byte) {
		counts[string(word)]++
	})

	shards := make([]merge.Shard, buckets)
	for word, count := range counts {
		b := Bucket(word, buckets)
		shards[b] = append(shards[b], merge.WordCount{Word: word, Count: count})
	}

	// Sorted shards let the reducer merge instead of re-sorting.
	for _, s := range shards {
		sort.Slice(s, func(i, j int) bool { return s[i].Word < s[j].Word })
	}
	return shards
}
