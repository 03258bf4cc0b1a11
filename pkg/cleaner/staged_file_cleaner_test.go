package cleaner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/cleaner"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

func TestStagedFileCleaner(t *testing.T) {
	ctx := context.Background()

	rootPath := t.TempDir()
	stagingDirectoryPath := filepath.Join(rootPath, "staging")
	require.NoError(t, os.Mkdir(stagingDirectoryPath, 0o700))
	stagingDirectory, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(stagingDirectoryPath))
	require.NoError(t, err)
	defer stagingDirectory.Close()

	settingsPath := filepath.Join(stagingDirectoryPath, "0001.args")
	commandPath := filepath.Join(stagingDirectoryPath, "0001.sh")
	unrelatedPath := filepath.Join(stagingDirectoryPath, "0002.sh")
	outsidePath := filepath.Join(rootPath, "0001.sh")
	for _, p := range []string{settingsPath, commandPath, unrelatedPath, outsidePath} {
		require.NoError(t, os.WriteFile(p, []byte("Hello"), 0o600))
	}

	removeStagedFiles := cleaner.NewStagedFileCleaner(stagingDirectory, stagingDirectoryPath, runas.Invocation{
		ToolPath: "/opt/runAs/bin/runAs.sh",
		Resources: []runas.Resource{
			&runas.FileResource{Path: settingsPath},
			&runas.FileResource{Path: commandPath},
			&runas.FileResource{Path: outsidePath},
			runas.NewAccessControlResource(nil),
		},
	})
	require.NoError(t, removeStagedFiles(ctx))

	// Only files of the invocation that reside in the staging
	// directory may be removed.
	for _, p := range []string{settingsPath, commandPath} {
		_, err := os.Stat(p)
		require.True(t, os.IsNotExist(err), p)
	}
	for _, p := range []string{unrelatedPath, outsidePath} {
		_, err := os.Stat(p)
		require.NoError(t, err, p)
	}

	// Running the cleaner a second time should be a no-op.
	require.NoError(t, removeStagedFiles(ctx))
}

func TestDirectoryCleaner(t *testing.T) {
	ctx := context.Background()

	stagingDirectoryPath := t.TempDir()
	stagingDirectory, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(stagingDirectoryPath))
	require.NoError(t, err)
	defer stagingDirectory.Close()

	require.NoError(t, os.WriteFile(filepath.Join(stagingDirectoryPath, "abandoned.args"), []byte("-u:user1\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(stagingDirectoryPath, "subdirectory"), 0o700))

	require.NoError(t, cleaner.NewDirectoryCleaner(stagingDirectory, stagingDirectoryPath)(ctx))

	entries, err := os.ReadDir(stagingDirectoryPath)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestChainedCleanerAfterBuild(t *testing.T) {
	ctx := context.Background()

	rootPath := t.TempDir()
	stagingDirectoryPath := filepath.Join(rootPath, "staging")
	temporaryDirectoryPath := filepath.Join(rootPath, "tmp")
	for _, p := range []string{stagingDirectoryPath, temporaryDirectoryPath} {
		require.NoError(t, os.Mkdir(p, 0o700))
	}
	stagingDirectory, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(stagingDirectoryPath))
	require.NoError(t, err)
	defer stagingDirectory.Close()
	temporaryDirectory, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(temporaryDirectoryPath))
	require.NoError(t, err)
	defer temporaryDirectory.Close()

	commandPath := filepath.Join(stagingDirectoryPath, "0001.sh")
	unrelatedPath := filepath.Join(stagingDirectoryPath, "0002.sh")
	for _, p := range []string{commandPath, unrelatedPath, filepath.Join(temporaryDirectoryPath, "output.log")} {
		require.NoError(t, os.WriteFile(p, []byte("Hello"), 0o600))
	}

	// Staged files of the invocation are removed and the
	// temporary directory is emptied. Files staged for other
	// invocations are left alone.
	require.NoError(t, cleaner.NewChainedCleaner([]cleaner.Cleaner{
		cleaner.NewStagedFileCleaner(stagingDirectory, stagingDirectoryPath, runas.Invocation{
			ToolPath:  "/opt/runAs/bin/runAs.sh",
			Resources: []runas.Resource{&runas.FileResource{Path: commandPath}},
		}),
		cleaner.NewDirectoryCleaner(temporaryDirectory, temporaryDirectoryPath),
	})(ctx))

	entries, err := os.ReadDir(stagingDirectoryPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "0002.sh", entries[0].Name())
	entries, err = os.ReadDir(temporaryDirectoryPath)
	require.NoError(t, err)
	require.Empty(t, entries)
}
