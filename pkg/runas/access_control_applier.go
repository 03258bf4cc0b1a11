package runas

import (
	"context"
)

// AccessControlApplier applies an access control list to the file
// system, using the primitives offered by the operating system.
type AccessControlApplier interface {
	ApplyAccessControlList(ctx context.Context, acl AccessControlList) error
}
