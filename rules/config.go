package rules

import "github.com/hashicorp/go-hclog"

// Option configures the logging collaborator used by the enumerators in
// this package.
type Option func(*config)

type config struct {
	logger hclog.Logger
}

func defaultConfig() *config {
	return &config{logger: hclog.NewNullLogger()}
}

// WithLogger attaches a logger that receives a Debug record whenever a
// candidate rewrite is skipped because the d-separation oracle panicked on
// a pathological graph. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func resolve(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
