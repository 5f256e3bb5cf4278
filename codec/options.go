package codec

import (
	"fmt"

	"github.com/bipfgo/bipf/internal/options"
)

// DefaultMaxDepth bounds recursive encode/decode nesting when no
// WithMaxDepth option is supplied.
const DefaultMaxDepth = 256

// config holds the resolved settings for a single Encode, Decode or
// EncodingLength call.
type config struct {
	maxDepth int
}

func defaultConfig() *config {
	return &config{maxDepth: DefaultMaxDepth}
}

// Option configures an Encode, Decode, or EncodingLength call.
type Option = options.Option[*config]

// WithMaxDepth overrides the maximum recursion depth for nested
// arrays/objects. It must be a positive number.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *config) error {
		if depth <= 0 {
			return fmt.Errorf("codec: max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

func resolve(opts []Option) (*config, error) {
	c := defaultConfig()
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
