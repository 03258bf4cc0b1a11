package runas

import (
	"path/filepath"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Permission is a set of access rights. Recursive is a modifier that
// only has meaning for directories. It is not a grant of its own.
type Permission uint8

const (
	Recursive Permission = 1 << iota
	AllowRead
	AllowWrite
	AllowExecute
	DenyRead
	DenyWrite
	DenyExecute
)

// permissionKinds lists the allow and deny bits per kind of access.
// An entry may mention each kind at most once, either as an allow or
// as a deny.
var permissionKinds = [...]struct {
	allow Permission
	deny  Permission
	name  string
}{
	{AllowRead, DenyRead, "Read"},
	{AllowWrite, DenyWrite, "Write"},
	{AllowExecute, DenyExecute, "Execute"},
}

// Has returns true if all bits in other are set.
func (p Permission) Has(other Permission) bool {
	return p&other == other
}

func (p Permission) String() string {
	var parts []string
	if p.Has(Recursive) {
		parts = append(parts, "Recursive")
	}
	for _, kind := range permissionKinds {
		if p.Has(kind.allow) {
			parts = append(parts, "Allow"+kind.name)
		}
		if p.Has(kind.deny) {
			parts = append(parts, "Deny"+kind.name)
		}
	}
	return strings.Join(parts, "|")
}

// AccessControlEntry grants or denies a principal access to a path.
type AccessControlEntry struct {
	Target      string
	Principal   Principal
	Permissions Permission
	Recursive   bool
}

func (e *AccessControlEntry) validate() error {
	if !filepath.IsAbs(e.Target) {
		return status.Errorf(codes.InvalidArgument, "Access control target %#v is not an absolute path", e.Target)
	}
	if e.Principal.IsBlank() {
		return status.Errorf(codes.InvalidArgument, "Access control entry for %#v has a principal with a blank identity", e.Target)
	}
	for _, kind := range permissionKinds {
		if e.Permissions.Has(kind.allow | kind.deny) {
			return status.Errorf(codes.InvalidArgument, "Access control entry for %#v both allows and denies %s", e.Target, strings.ToLower(kind.name))
		}
	}
	return nil
}

// AccessControlList is an ordered list of access control entries.
// Later entries for the same target and principal refine earlier ones.
type AccessControlList []AccessControlEntry

type accessControlKey struct {
	target    string
	principal Principal
	recursive bool
}

func (e *AccessControlEntry) key() accessControlKey {
	return accessControlKey{
		target:    e.Target,
		principal: e.Principal,
		recursive: e.Recursive,
	}
}

// Effective resolves conflicting entries. For every kind of access
// (read, write, execute), the last entry for a given target, principal
// and recursiveness that mentions it wins. The resulting list contains
// a single entry per target, principal and recursiveness, in order of
// first appearance.
func (l AccessControlList) Effective() AccessControlList {
	var order []accessControlKey
	decisions := map[accessControlKey]Permission{}
	for i := range l {
		entry := &l[i]
		key := entry.key()
		current, ok := decisions[key]
		if !ok {
			order = append(order, key)
		}
		for _, kind := range permissionKinds {
			if entry.Permissions&(kind.allow|kind.deny) != 0 {
				current = current&^(kind.allow|kind.deny) | entry.Permissions&(kind.allow|kind.deny)
			}
		}
		decisions[key] = current
	}

	effective := make(AccessControlList, 0, len(order))
	for _, key := range order {
		if permissions := decisions[key]; permissions != 0 {
			effective = append(effective, AccessControlEntry{
				Target:      key.target,
				Principal:   key.principal,
				Permissions: permissions,
				Recursive:   key.recursive,
			})
		}
	}
	return effective
}

// isInEffect returns true if applying the entry to the list would not
// change the outcome of Effective().
func (l AccessControlList) isInEffect(entry *AccessControlEntry) bool {
	key := entry.key()
	for _, kind := range permissionKinds {
		wanted := entry.Permissions & (kind.allow | kind.deny)
		if wanted == 0 {
			continue
		}
		var decision Permission
		for i := range l {
			if existing := &l[i]; existing.key() == key && existing.Permissions&(kind.allow|kind.deny) != 0 {
				decision = existing.Permissions & (kind.allow | kind.deny)
			}
		}
		if decision != wanted {
			return false
		}
	}
	return true
}
