package filesystem_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	re_filesystem "github.com/MartinWitt/teamcity-runas-plugin/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLocalFileService(t *testing.T) {
	rootPath := t.TempDir()
	stagingDirectoryPath := filepath.Join(rootPath, "staging")
	checkoutDirectoryPath := filepath.Join(rootPath, "checkout")
	temporaryDirectoryPath := filepath.Join(rootPath, "tmp")

	t.Run("RelativePath", func(t *testing.T) {
		_, err := re_filesystem.NewLocalFileService("staging", checkoutDirectoryPath, temporaryDirectoryPath)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Path \"staging\" is not absolute"), err)
	})

	fileService, err := re_filesystem.NewLocalFileService(stagingDirectoryPath+string(filepath.Separator), checkoutDirectoryPath, temporaryDirectoryPath)
	require.NoError(t, err)

	t.Run("Directories", func(t *testing.T) {
		require.Equal(t, checkoutDirectoryPath, fileService.CheckoutDirectory())
		require.Equal(t, temporaryDirectoryPath, fileService.TempDirectory())
	})

	t.Run("TempFileName", func(t *testing.T) {
		// Names must be unique and located in the staging
		// directory, carrying the requested extension.
		name1, err := fileService.TempFileName(".args")
		require.NoError(t, err)
		name2, err := fileService.TempFileName(".args")
		require.NoError(t, err)
		require.NotEqual(t, name1, name2)
		for _, name := range []string{name1, name2} {
			require.Equal(t, stagingDirectoryPath, filepath.Dir(name))
			require.True(t, strings.HasSuffix(name, ".args"))
		}
	})

	t.Run("ValidatePathNonExistent", func(t *testing.T) {
		p := filepath.Join(rootPath, "runAs.sh")
		testutil.RequireEqualStatus(t, status.Errorf(codes.NotFound, "File %#v does not exist", p), fileService.ValidatePath(p))
	})

	t.Run("ValidatePathDirectory", func(t *testing.T) {
		testutil.RequireEqualStatus(t, status.Errorf(codes.FailedPrecondition, "Path %#v is not a regular file", rootPath), fileService.ValidatePath(rootPath))
	})

	t.Run("ValidatePathSuccess", func(t *testing.T) {
		p := filepath.Join(rootPath, "runAs.cmd")
		require.NoError(t, os.WriteFile(p, []byte("@ECHO OFF\r\n"), 0o755))
		require.NoError(t, fileService.ValidatePath(p))
	})
}

func TestStaticToolLocator(t *testing.T) {
	toolLocator := re_filesystem.NewStaticToolLocator(map[string]string{
		"runAs": "/opt/runAs/bin",
	})

	toolPath, err := toolLocator.GetToolPath("runAs")
	require.NoError(t, err)
	require.Equal(t, "/opt/runAs/bin", toolPath)

	_, err = toolLocator.GetToolPath("dotnet")
	testutil.RequireEqualStatus(t, status.Error(codes.NotFound, "Tool \"dotnet\" is not installed"), err)
}
