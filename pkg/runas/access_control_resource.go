package runas

// AccessControlResource is the access control list that needs to be
// applied before an invocation is launched. There is at most one of
// these per invocation.
//
// The resource accumulates entries as an invocation passes through
// multiple transformations. Instances are immutable. Extending a
// resource yields a new one, which replaces the old one in the
// resulting invocation.
type AccessControlResource struct {
	acl AccessControlList
}

// NewAccessControlResource creates an access control resource that
// holds a copy of the provided list.
func NewAccessControlResource(acl AccessControlList) *AccessControlResource {
	return (*AccessControlResource)(nil).Extend(acl)
}

func (*AccessControlResource) isResource() {}

// AccessControlList returns a copy of the entries of the resource.
func (r *AccessControlResource) AccessControlList() AccessControlList {
	if r == nil {
		return nil
	}
	return append(AccessControlList(nil), r.acl...)
}

// Extend returns a new resource that contains the entries of the
// current resource, followed by the provided entries. Entries whose
// grants are already in effect are omitted, so that transforming an
// invocation repeatedly does not cause entries to be duplicated. It is
// valid to call Extend on a nil resource.
func (r *AccessControlResource) Extend(acl AccessControlList) *AccessControlResource {
	extended := r.AccessControlList()
	for i := range acl {
		if entry := &acl[i]; !extended.isInEffect(entry) {
			extended = append(extended, *entry)
		}
	}
	return &AccessControlResource{acl: extended}
}
