package accesscontrol

import (
	"os"
	"strings"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DirectoryChecker reports whether a path refers to a directory.
type DirectoryChecker func(path string) (bool, error)

// IsLocalDirectory is a DirectoryChecker for the local file system.
// Symbolic links are followed.
func IsLocalDirectory(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fileInfo.IsDir(), nil
}

type posixTranslator struct {
	isDirectory DirectoryChecker
}

// NewPOSIXTranslator creates a CommandTranslator for UNIX-like
// systems. Entries for AllPrincipals and CurrentPrincipal are applied
// to the "other" and "user" permission bits using chmod. Entries for
// named users are applied as POSIX ACL entries using setfacl.
//
// When granting recursive read access, execute access is granted to
// directories as well, as they could not be traversed otherwise.
// Granting execute access to a file that is not a directory also
// grants read access, as scripts can only be executed by an
// interpreter that is able to read them. Execute access to a directory
// only permits traversing it.
func NewPOSIXTranslator(isDirectory DirectoryChecker) CommandTranslator {
	return &posixTranslator{
		isDirectory: isDirectory,
	}
}

var posixRights = [...]struct {
	allow  runas.Permission
	deny   runas.Permission
	letter byte
}{
	{runas.AllowRead, runas.DenyRead, 'r'},
	{runas.AllowWrite, runas.DenyWrite, 'w'},
	{runas.AllowExecute, runas.DenyExecute, 'x'},
}

func (t *posixTranslator) TranslateAccessControlEntry(entry runas.AccessControlEntry) ([]Command, error) {
	if !entry.Recursive && entry.Permissions.Has(runas.AllowExecute) && !entry.Permissions.Has(runas.DenyRead) {
		isDirectory, err := t.isDirectory(entry.Target)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.FailedPrecondition, "Failed to determine file type of %#v", entry.Target)
		}
		if !isDirectory {
			entry.Permissions |= runas.AllowRead
		}
	}

	var arguments []string
	if entry.Recursive {
		arguments = append(arguments, "-R")
	}

	traversable := entry.Recursive && entry.Permissions.Has(runas.AllowRead) && !entry.Permissions.Has(runas.DenyExecute)
	switch entry.Principal.Kind() {
	case runas.AllPrincipalsKind, runas.CurrentPrincipalKind:
		who := "o"
		if entry.Principal.Kind() == runas.CurrentPrincipalKind {
			who = "u"
		}
		var allowed, denied strings.Builder
		for _, right := range posixRights {
			if entry.Permissions.Has(right.allow) {
				allowed.WriteByte(right.letter)
			} else if entry.Permissions.Has(right.deny) {
				denied.WriteByte(right.letter)
			}
		}
		if traversable && !entry.Permissions.Has(runas.AllowExecute) {
			allowed.WriteByte('X')
		}
		var clauses []string
		if allowed.Len() > 0 {
			clauses = append(clauses, who+"+"+allowed.String())
		}
		if denied.Len() > 0 {
			clauses = append(clauses, who+"-"+denied.String())
		}
		if len(clauses) == 0 {
			return nil, nil
		}
		arguments = append(arguments, strings.Join(clauses, ","), entry.Target)
		return []Command{{Name: "chmod", Arguments: arguments}}, nil
	case runas.NamedPrincipalKind:
		if entry.Principal.IsBlank() {
			return nil, status.Errorf(codes.InvalidArgument, "Cannot grant access to %#v to a user with a blank name", entry.Target)
		}
		perms := []byte("---")
		for i, right := range posixRights {
			if entry.Permissions.Has(right.allow) {
				perms[i] = right.letter
			}
		}
		if traversable && perms[2] == '-' {
			perms[2] = 'X'
		}
		arguments = append(arguments, "-m", "u:"+entry.Principal.Identity()+":"+string(perms), entry.Target)
		return []Command{{Name: "setfacl", Arguments: arguments}}, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown principal %s", entry.Principal)
	}
}
