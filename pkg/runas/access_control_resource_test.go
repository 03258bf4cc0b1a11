package runas_test

import (
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/stretchr/testify/require"
)

func TestAccessControlResource(t *testing.T) {
	user1 := runas.NewNamedPrincipal("user1")
	acl := runas.AccessControlList{
		{Target: "/work/checkout", Principal: user1, Permissions: runas.AllowRead | runas.AllowWrite, Recursive: true},
		{Target: "/staging/0001.sh", Principal: user1, Permissions: runas.AllowExecute},
	}

	t.Run("Nil", func(t *testing.T) {
		var r *runas.AccessControlResource
		require.Empty(t, r.AccessControlList())
		require.Equal(t, acl, r.Extend(acl).AccessControlList())
	})

	t.Run("Copy", func(t *testing.T) {
		// Neither the input, nor the output of a resource may
		// alias its contents.
		input := append(runas.AccessControlList(nil), acl...)
		r := runas.NewAccessControlResource(input)
		input[0].Permissions = runas.DenyRead
		output := r.AccessControlList()
		output[1].Permissions = runas.DenyExecute
		require.Equal(t, acl, r.AccessControlList())
	})

	t.Run("Immutable", func(t *testing.T) {
		r1 := runas.NewAccessControlResource(acl[:1])
		r2 := r1.Extend(acl[1:])
		require.Equal(t, acl[:1], r1.AccessControlList())
		require.Equal(t, acl, r2.AccessControlList())
	})

	t.Run("Idempotent", func(t *testing.T) {
		r := runas.NewAccessControlResource(acl)
		require.Equal(t, acl, r.Extend(acl).AccessControlList())
		require.Equal(t, acl, r.Extend(acl).Extend(acl).AccessControlList())

		// A grant that is the combination of two existing
		// entries is also already in effect.
		split := runas.NewAccessControlResource(runas.AccessControlList{
			{Target: "/a", Principal: user1, Permissions: runas.AllowRead},
			{Target: "/a", Principal: user1, Permissions: runas.AllowWrite},
		})
		require.Len(t, split.Extend(runas.AccessControlList{
			{Target: "/a", Principal: user1, Permissions: runas.AllowRead | runas.AllowWrite},
		}).AccessControlList(), 2)
	})

	t.Run("Override", func(t *testing.T) {
		// Entries that change the outcome must be appended,
		// even if an entry with the same key is already present.
		r := runas.NewAccessControlResource(acl).Extend(runas.AccessControlList{
			{Target: "/staging/0001.sh", Principal: user1, Permissions: runas.DenyExecute},
		})
		require.Equal(t, runas.AccessControlList{
			{Target: "/work/checkout", Principal: user1, Permissions: runas.AllowRead | runas.AllowWrite, Recursive: true},
			{Target: "/staging/0001.sh", Principal: user1, Permissions: runas.DenyExecute},
		}, r.AccessControlList().Effective())
	})
}
