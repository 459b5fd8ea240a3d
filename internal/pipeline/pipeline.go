// Package pipeline runs the parallel word count: map tasks over word-aligned
// ranges of the mapped input, a bucket-major shuffle, reduce tasks per
// bucket and a single-threaded merge that streams the result to the output.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/andreyflyagin/wordcounter/internal/mapfile"
	"github.com/andreyflyagin/wordcounter/internal/merge"
	"github.com/andreyflyagin/wordcounter/internal/partition"
	"github.com/andreyflyagin/wordcounter/internal/wcerrors"
	"github.com/andreyflyagin/wordcounter/internal/wordmap"
)

// Pipeline owns the mapped input, the output file and the worker count for
// one word count. Create it with Open and release it with Close.
type Pipeline struct {
	in      *mapfile.File
	out     *os.File
	workers int
	log     *zap.Logger
}

// Stats summarizes a finished run.
type Stats struct {
	Workers    int
	Partitions int
	Words      int // total words, counting repeats
	Distinct   int // output lines
	Elapsed    time.Duration
}

// Open opens inPath, creates or truncates outPath, then maps inPath. Without options it uses
// one worker per CPU and logs nothing. Any failure releases what was already
// acquired.
func Open(inPath, outPath string, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		workers: runtime.NumCPU(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers < 1 {
		return nil, fmt.Errorf("%w: %d", wcerrors.ErrWorkers, p.workers)
	}

	in, err := mapfile.OpenFile(inPath)
	if err != nil {
		return nil, err
	}
	p.in = in

	// The output is truncated before the input is sized and mapped, so a
	// run whose output is its own input sees an empty file instead of a
	// mapping that shrinks under it.
	out, err := os.OpenFile(outPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("%w: %s: %w", wcerrors.ErrOpen, outPath, err)
	}
	p.out = out

	if err := p.in.Map(); err != nil {
		// Map has already released the input.
		p.in = nil
		p.Close()
		return nil, err
	}

	return p, nil
}

// Run counts the words of the input and writes them to the output, most
// frequent first. Both parallel phases are fully joined before the next
// phase starts.
func (p *Pipeline) Run() (Stats, error) {
	start := time.Now()
	stats := Stats{Workers: p.workers}
	data := p.in.Bytes()

	ranges := partition.Split(data, p.workers)
	stats.Partitions = len(ranges)
	p.log.Debug("map phase starting",
		zap.Int("bytes", len(data)),
		zap.Int("partitions", len(ranges)),
		zap.Int("buckets", p.workers))

	mapped := make([][]merge.Shard, len(ranges))
	err := runTasks("map", len(ranges), func(i int) error {
		mapped[i] = wordmap.Count(data, ranges[i], p.workers)
		return nil
	})
	if err != nil {
		return stats, err
	}

	byBucket := merge.Transpose(mapped, p.workers)
	p.log.Debug("reduce phase starting", zap.Int("buckets", len(byBucket)))

	reduced := make([][]merge.WordCount, p.workers)
	err = runTasks("reduce", p.workers, func(b int) error {
		reduced[b] = merge.Reduce(byBucket[b])
		byBucket[b] = nil
		return nil
	})
	if err != nil {
		return stats, err
	}

	for _, bucket := range reduced {
		stats.Distinct += len(bucket)
		for _, wc := range bucket {
			stats.Words += wc.Count
		}
	}

	p.log.Debug("merge phase starting", zap.Int("distinct", stats.Distinct))
	if _, err := merge.Global(reduced, p.out); err != nil {
		return stats, fmt.Errorf("%s: %w", p.out.Name(), err)
	}

	stats.Elapsed = time.Since(start)
	p.log.Info("word count finished",
		zap.Int("workers", stats.Workers),
		zap.Int("partitions", stats.Partitions),
		zap.Int("words", stats.Words),
		zap.Int("distinct", stats.Distinct),
		zap.Duration("elapsed", stats.Elapsed))
	return stats, nil
}

// Close releases the output file, the input file and the input mapping, in
// that order. Failures are logged and never change the outcome of a run.
// Close is safe to call more than once.
func (p *Pipeline) Close() {
	if p.out != nil {
		if err := p.out.Close(); err != nil {
			p.log.Error("release failed", zap.Error(fmt.Errorf("%w: close output: %w", wcerrors.ErrCleanup, err)))
		}
		p.out = nil
	}

	if p.in != nil {
		if err := p.in.Close(); err != nil {
			p.log.Error("release failed", zap.Error(err))
		}
		p.in = nil
	}
}
