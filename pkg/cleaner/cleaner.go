package cleaner

import (
	"context"
)

// Cleaner is a function that removes leftovers of build steps, such as
// files that were staged to run a build step as another user.
type Cleaner func(ctx context.Context) error

// NewChainedCleaner creates a Cleaner that invokes a series of
// existing Cleaner objects sequentially. All of them are invoked, even
// if some of them fail. The first observed error is returned.
func NewChainedCleaner(cleaners []Cleaner) Cleaner {
	return func(ctx context.Context) error {
		var firstErr error
		for _, c := range cleaners {
			if err := c(ctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
}
