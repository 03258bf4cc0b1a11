package aliases

import (
	"context"
)

// This file contains interface counterparts of function types declared
// by this repository. Mocks can only be generated for interfaces.

// Cleaner has a method with the same signature as cleaner.Cleaner.
type Cleaner interface {
	Call(ctx context.Context) error
}
