package accesscontrol

import (
	"strings"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// everyoneSID is the well-known security identifier of the Everyone
// group. It is used instead of the group's name, as the latter is
// localized.
const everyoneSID = "*S-1-1-0"

type icaclsTranslator struct {
	currentUser string
}

// NewICACLSTranslator creates a CommandTranslator for Windows, which
// applies entries using icacls. Recursive entries are inherited by
// files and subdirectories created in the future, and are applied to
// existing ones as well.
func NewICACLSTranslator(currentUser string) CommandTranslator {
	return &icaclsTranslator{
		currentUser: currentUser,
	}
}

var icaclsRights = [...]struct {
	allow runas.Permission
	deny  runas.Permission
	right string
}{
	{runas.AllowRead, runas.DenyRead, "R"},
	{runas.AllowWrite, runas.DenyWrite, "W"},
	{runas.AllowExecute, runas.DenyExecute, "X"},
}

func (t *icaclsTranslator) getAccount(principal runas.Principal) (string, error) {
	switch principal.Kind() {
	case runas.AllPrincipalsKind:
		return everyoneSID, nil
	case runas.CurrentPrincipalKind:
		return t.currentUser, nil
	default:
		if principal.IsBlank() {
			return "", status.Error(codes.InvalidArgument, "User name is blank")
		}
		return principal.Identity(), nil
	}
}

func (t *icaclsTranslator) TranslateAccessControlEntry(entry runas.AccessControlEntry) ([]Command, error) {
	account, err := t.getAccount(entry.Principal)
	if err != nil {
		return nil, err
	}
	inheritance := ""
	if entry.Recursive {
		inheritance = "(OI)(CI)"
	}

	var granted, denied []string
	for _, right := range icaclsRights {
		if entry.Permissions.Has(right.allow) {
			granted = append(granted, right.right)
		} else if entry.Permissions.Has(right.deny) {
			denied = append(denied, right.right)
		}
	}

	var commands []Command
	for _, change := range [...]struct {
		option string
		rights []string
	}{
		{"/grant", granted},
		{"/deny", denied},
	} {
		if len(change.rights) == 0 {
			continue
		}
		arguments := []string{entry.Target, change.option, account + ":" + inheritance + "(" + strings.Join(change.rights, ",") + ")"}
		if entry.Recursive {
			arguments = append(arguments, "/T")
		}
		commands = append(commands, Command{Name: "icacls", Arguments: arguments})
	}
	return commands, nil
}
