package proof

import "github.com/hashicorp/go-hclog"

// Option configures a FindProof or Explore call.
type Option func(*config)

type config struct {
	logger   hclog.Logger
	maxDepth int
}

func defaultConfig() *config {
	return &config{logger: hclog.NewNullLogger(), maxDepth: 10}
}

// WithLogger attaches a logger that receives an Info record when a proof is
// found or exhausted, mirroring the original implementation's progress
// logging. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth bounds the number of rule applications the search will take.
// max_depth = 0 only accepts a proof of the empty (already-equivalent)
// path. Negative values are treated as 0.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			d = 0
		}
		c.maxDepth = d
	}
}

func resolve(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
