package runas_test

import (
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestArgsFileSettingsGenerator(t *testing.T) {
	generator := runas.NewArgsFileSettingsGenerator()

	t.Run("UserOnly", func(t *testing.T) {
		settings, err := generator.GenerateSettings(&runas.Credentials{
			User:     runas.NewNamedPrincipal("DOMAIN\\builder"),
			Password: runas.NewPassword("secret"),
		})
		require.NoError(t, err)
		require.Equal(t, "-u:DOMAIN\\builder\n", settings)
	})

	t.Run("ExtraArguments", func(t *testing.T) {
		settings, err := generator.GenerateSettings(&runas.Credentials{
			User:           runas.NewNamedPrincipal("user1"),
			Password:       runas.NewPassword("secret"),
			ExtraArguments: runas.NewParameterArguments("-l:auto", "-il:high"),
		})
		require.NoError(t, err)
		require.Equal(t, "-u:user1\n-l:auto\n-il:high\n", settings)
		require.NotContains(t, settings, "secret")
	})

	t.Run("BlankUser", func(t *testing.T) {
		_, err := generator.GenerateSettings(&runas.Credentials{
			User:     runas.NewNamedPrincipal("  "),
			Password: runas.NewPassword("secret"),
		})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("WellKnownPrincipal", func(t *testing.T) {
		_, err := generator.GenerateSettings(&runas.Credentials{
			User:     runas.AllPrincipals,
			Password: runas.NewPassword("secret"),
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Cannot generate settings for user <all>"), err)
	})

	t.Run("NewlineInArgument", func(t *testing.T) {
		_, err := generator.GenerateSettings(&runas.Credentials{
			User:           runas.NewNamedPrincipal("user1"),
			Password:       runas.NewPassword("secret"),
			ExtraArguments: runas.NewParameterArguments("-a\r\n-u:root"),
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Additional argument \"-a\\r\\n-u:root\" contains a newline"), err)
	})
}
