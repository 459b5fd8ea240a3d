// Package merge holds the reduce side of the word counter: moving shards from
// task-major to bucket-major order, merging the shards of one bucket, and the
// final k-way merge of every bucket into the output.
package merge

import (
	"container/heap"
	"sort"
)

// WordCount records the number of occurrences of a word.
type WordCount struct {
	Word  string
	Count int
}

// Shard is the part of one bucket produced by a single map task. It is sorted
// by Word and holds each word at most once.
type Shard []WordCount

// ByFrequency orders by descending count, then ascending word.
func ByFrequency(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// Transpose moves m, indexed [task][bucket], into a bucket-major matrix
// indexed [bucket][task]. Every row of m must hold buckets shards. The shards
// are moved, not copied: m's slots are cleared as they are taken.
func Transpose(m [][]Shard, buckets int) [][]Shard {
	out := make([][]Shard, buckets)
	for b := range out {
		out[b] = make([]Shard, 0, len(m))
		for t := range m {
			out[b] = append(out[b], m[t][b])
			m[t][b] = nil
		}
	}
	return out
}

// Reduce merges the shards of one bucket into a single list with one entry
// per word, summing counts of words seen by several tasks. The result is
// sorted with ByFrequency.
func Reduce(shards []Shard) []WordCount {
	h := make(wordHeap, 0, len(shards))
	total := 0
	for _, s := range shards {
		if len(s) > 0 {
			h = append(h, &cursor{seq: s})
			total += len(s)
		}
	}
	heap.Init(&h)

	out := make([]WordCount, 0, total)
	for h.Len() > 0 {
		c := h[0]
		wc := c.head()
		if n := len(out); n > 0 && out[n-1].Word == wc.Word {
			out[n-1].Count += wc.Count
		} else {
			out = append(out, wc)
		}

		if c.advance() {
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}

	sort.Slice(out, func(i, j int) bool { return ByFrequency(out[i], out[j]) })
	return out
}

// cursor walks one sorted sequence. It stays valid wherever it is moved
// because it holds the sequence itself rather than pointers into it.
type cursor struct {
	seq []WordCount
	pos int
}

func (c *cursor) head() WordCount { return c.seq[c.pos] }

// advance moves to the next entry and reports whether one exists.
func (c *cursor) advance() bool {
	c.pos++
	return c.pos < len(c.seq)
}

// wordHeap is a min-heap of cursors keyed by their head word.
type wordHeap []*cursor

func (h wordHeap) Len() int           { return len(h) }
func (h wordHeap) Less(i, j int) bool { return h[i].head().Word < h[j].head().Word }
func (h wordHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *wordHeap) Push(x interface{}) {
	*h = append(*h, x.(*cursor))
}

func (h *wordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// freqHeap puts the cursor whose head comes first under ByFrequency on top.
type freqHeap []*cursor

func (h freqHeap) Len() int           { return len(h) }
func (h freqHeap) Less(i, j int) bool { return ByFrequency(h[i].head(), h[j].head()) }
func (h freqHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *freqHeap) Push(x interface{}) {
	*h = append(*h, x.(*cursor))
}

func (h *freqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
