package pipeline

import "go.uber.org/zap"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of map tasks, reduce tasks and buckets.
// It must be at least 1; Open rejects anything smaller.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithLogger sets the logger used for phase progress and teardown failures.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}
