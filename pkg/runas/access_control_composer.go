package runas

import (
	"path/filepath"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AccessControlScope indicates to which principals an
// AccessControlComposer grants access.
type AccessControlScope int

const (
	// BroadScope grants access to AllPrincipals. It is only used
	// when no specific user account is known.
	BroadScope AccessControlScope = iota
	// UserScope grants access exclusively to the user as which
	// the build step runs.
	UserScope
)

// AccessControlComposer computes the access control entries that are
// needed to let a user run a staged command file.
type AccessControlComposer interface {
	Scope() AccessControlScope
	ComposeAccessControlList(user Principal, commandFile string) (AccessControlList, error)
}

// PathAccess describes the permissions that are needed on a single
// path. Setting Recursive in Permissions causes the entry to apply to
// everything underneath a directory.
type PathAccess struct {
	Path        string
	Permissions Permission
}

// ComposeBroadAccessControlList creates an access control list that
// grants the requested permissions to AllPrincipals.
func ComposeBroadAccessControlList(paths []PathAccess) (AccessControlList, error) {
	acl := make(AccessControlList, 0, len(paths))
	for _, p := range paths {
		entry := AccessControlEntry{
			Target:      p.Path,
			Principal:   AllPrincipals,
			Permissions: p.Permissions &^ Recursive,
			Recursive:   p.Permissions.Has(Recursive),
		}
		if err := entry.validate(); err != nil {
			return nil, err
		}
		acl = append(acl, entry)
	}
	return acl, nil
}

// ComposeScopedAccessControlList creates an access control list that
// only grants permissions to a single named principal. The entries of
// the baseline list come first, followed by the entries provided.
// Entries for any other principal cause composition to fail, as it
// would otherwise be possible to grant access more broadly than
// intended.
func ComposeScopedAccessControlList(principal Principal, entries, baseline AccessControlList) (AccessControlList, error) {
	if principal.Kind() != NamedPrincipalKind {
		return nil, status.Errorf(codes.InvalidArgument, "Scoped access can only be granted to a named user, not %s", principal)
	}
	if principal.IsBlank() {
		return nil, status.Error(codes.InvalidArgument, "Scoped access cannot be granted to a user with a blank name")
	}
	acl := make(AccessControlList, 0, len(baseline)+len(entries))
	for _, l := range [...]AccessControlList{baseline, entries} {
		for _, entry := range l {
			if entry.Principal != principal {
				return nil, status.Errorf(codes.InvalidArgument, "Access control entry for %#v refers to principal %s, while only %s may be granted access", entry.Target, entry.Principal, principal)
			}
			if err := entry.validate(); err != nil {
				return nil, err
			}
			acl = append(acl, entry)
		}
	}
	return acl, nil
}

type broadAccessControlComposer struct {
	fileService FileService
}

// NewBroadAccessControlComposer creates an AccessControlComposer that
// grants every account on the system permission to traverse the
// staging directory, to execute the command file and to read and
// write the checkout and temporary directories.
//
// This composer should only be used when the build step runs under a
// generic system account. Whenever credentials of a specific user are
// available, NewScopedAccessControlComposer() should be preferred.
func NewBroadAccessControlComposer(fileService FileService) AccessControlComposer {
	return &broadAccessControlComposer{
		fileService: fileService,
	}
}

func (broadAccessControlComposer) Scope() AccessControlScope {
	return BroadScope
}

func (c *broadAccessControlComposer) ComposeAccessControlList(user Principal, commandFile string) (AccessControlList, error) {
	return ComposeBroadAccessControlList([]PathAccess{
		{Path: filepath.Dir(commandFile), Permissions: AllowExecute},
		{Path: commandFile, Permissions: AllowExecute},
		{Path: c.fileService.CheckoutDirectory(), Permissions: Recursive | AllowRead | AllowWrite},
		{Path: c.fileService.TempDirectory(), Permissions: Recursive | AllowRead | AllowWrite},
	})
}

// BaselineAccessControlProvider yields the access control entries a
// user needs to run a build step, regardless of how the step is
// launched. These are typically grants on the directories in which
// the build step operates.
type BaselineAccessControlProvider interface {
	GetBaselineAccessControlList(user Principal) (AccessControlList, error)
}

type scopedAccessControlComposer struct {
	baselineProvider BaselineAccessControlProvider
}

// NewScopedAccessControlComposer creates an AccessControlComposer that
// only grants access to the user as which the build step runs. The
// user is permitted to traverse the staging directory and to execute
// the command file, in addition to the entries provided by the
// BaselineAccessControlProvider.
func NewScopedAccessControlComposer(baselineProvider BaselineAccessControlProvider) AccessControlComposer {
	return &scopedAccessControlComposer{
		baselineProvider: baselineProvider,
	}
}

func (scopedAccessControlComposer) Scope() AccessControlScope {
	return UserScope
}

func (c *scopedAccessControlComposer) ComposeAccessControlList(user Principal, commandFile string) (AccessControlList, error) {
	if user.IsBlank() {
		return nil, status.Error(codes.InvalidArgument, "Scoped access cannot be granted to a user with a blank name")
	}
	baseline, err := c.baselineProvider.GetBaselineAccessControlList(user)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to obtain baseline access control list for user %#v", user.Identity())
	}
	return ComposeScopedAccessControlList(
		user,
		AccessControlList{
			{
				Target:      filepath.Dir(commandFile),
				Principal:   user,
				Permissions: AllowExecute,
			},
			{
				Target:      commandFile,
				Principal:   user,
				Permissions: AllowExecute,
			},
		},
		baseline)
}

type workspaceBaselineAccessControlProvider struct {
	fileService FileService
}

// NewWorkspaceBaselineAccessControlProvider creates a
// BaselineAccessControlProvider that grants a user recursive read and
// write access to the checkout and temporary directories.
func NewWorkspaceBaselineAccessControlProvider(fileService FileService) BaselineAccessControlProvider {
	return &workspaceBaselineAccessControlProvider{
		fileService: fileService,
	}
}

func (p *workspaceBaselineAccessControlProvider) GetBaselineAccessControlList(user Principal) (AccessControlList, error) {
	return AccessControlList{
		{
			Target:      p.fileService.CheckoutDirectory(),
			Principal:   user,
			Permissions: AllowRead | AllowWrite,
			Recursive:   true,
		},
		{
			Target:      p.fileService.TempDirectory(),
			Principal:   user,
			Permissions: AllowRead | AllowWrite,
			Recursive:   true,
		},
	}, nil
}
