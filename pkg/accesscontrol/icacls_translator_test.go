package accesscontrol_test

import (
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestICACLSTranslator(t *testing.T) {
	translator := accesscontrol.NewICACLSTranslator("AGENT\\buildagent")

	for _, testCase := range []struct {
		name     string
		entry    runas.AccessControlEntry
		expected []accesscontrol.Command
	}{
		{
			name:  "CurrentExecute",
			entry: runas.AccessControlEntry{Target: "C:\\runAs\\runAs.cmd", Principal: runas.CurrentPrincipal, Permissions: runas.AllowExecute},
			expected: []accesscontrol.Command{
				{Name: "icacls", Arguments: []string{"C:\\runAs\\runAs.cmd", "/grant", "AGENT\\buildagent:(X)"}},
			},
		},
		{
			name:  "EveryoneRecursive",
			entry: runas.AccessControlEntry{Target: "C:\\work", Principal: runas.AllPrincipals, Permissions: runas.AllowRead | runas.AllowWrite, Recursive: true},
			expected: []accesscontrol.Command{
				{Name: "icacls", Arguments: []string{"C:\\work", "/grant", "*S-1-1-0:(OI)(CI)(R,W)", "/T"}},
			},
		},
		{
			name:  "NamedAllowAndDeny",
			entry: runas.AccessControlEntry{Target: "C:\\work\\secret", Principal: runas.NewNamedPrincipal("user1"), Permissions: runas.AllowRead | runas.DenyWrite | runas.DenyExecute},
			expected: []accesscontrol.Command{
				{Name: "icacls", Arguments: []string{"C:\\work\\secret", "/grant", "user1:(R)"}},
				{Name: "icacls", Arguments: []string{"C:\\work\\secret", "/deny", "user1:(W,X)"}},
			},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			commands, err := translator.TranslateAccessControlEntry(testCase.entry)
			require.NoError(t, err)
			require.Equal(t, testCase.expected, commands)
		})
	}

	t.Run("BlankUser", func(t *testing.T) {
		_, err := translator.TranslateAccessControlEntry(runas.AccessControlEntry{Target: "C:\\work", Principal: runas.NewNamedPrincipal(" "), Permissions: runas.AllowRead})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "User name is blank"), err)
	})
}
