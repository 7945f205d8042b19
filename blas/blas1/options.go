package blas1

import (
	"github.com/cwbudde/algo-blas/blas/exec"
)

type config struct {
	space exec.Space
}

// Option customizes how a kernel call is executed.
type Option func(*config)

// WithSpace selects the execution space the call launches on. The default
// is exec.Default().
func WithSpace(sp exec.Space) Option {
	return func(c *config) {
		if sp != nil {
			c.space = sp
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{space: exec.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
