package geom

// minParallelLines is the collection size below which sharding the pairwise
// sweep costs more than it saves; smaller inputs always run serially.
const minParallelLines = 64

// Options holds tunable parameters for the pairwise intersection sweep.
type Options struct {
	// Workers is the number of goroutines sharding the pair space.
	// Values ≤ 1 select the serial sweep.
	Workers int
}

// Option mutates Options before a sweep starts.
type Option func(*Options)

// defaultOptions returns the serial configuration.
func defaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers shards the pairwise sweep across k goroutines. The result is
// identical to the serial sweep; only wall time changes.
func WithWorkers(k int) Option {
	return func(o *Options) { o.Workers = k }
}
