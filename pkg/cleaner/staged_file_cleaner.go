package cleaner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewStagedFileCleaner creates a Cleaner that removes the files that
// were staged for an invocation. Files that no longer exist are
// ignored, so that the Cleaner may be called more than once. Files
// located outside the staging directory are never touched.
func NewStagedFileCleaner(directory filesystem.Directory, directoryPath string, invocation runas.Invocation) Cleaner {
	directoryPath = filepath.Clean(directoryPath)
	files := invocation.FileResources()
	return func(ctx context.Context) error {
		for _, file := range files {
			if filepath.Dir(file.Path) != directoryPath {
				continue
			}
			name, ok := path.NewComponent(filepath.Base(file.Path))
			if !ok {
				return status.Errorf(codes.InvalidArgument, "File %#v has an invalid name", file.Path)
			}
			if err := directory.Remove(name); err != nil && !os.IsNotExist(err) {
				return util.StatusWrapfWithCode(err, codes.Internal, "Failed to remove staged file %#v", file.Path)
			}
		}
		return nil
	}
}
