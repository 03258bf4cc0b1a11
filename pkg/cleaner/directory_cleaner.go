package cleaner

import (
	"context"

	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
)

// NewDirectoryCleaner creates a Cleaner that removes all files within
// a given directory. It is used to remove files that were abandoned in
// the staging directory when the agent starts, as such files may
// contain the names of users and their additional arguments. It can
// also be used to empty the temporary directory of a build step.
func NewDirectoryCleaner(directory filesystem.Directory, directoryPath string) Cleaner {
	return func(ctx context.Context) error {
		if err := directory.RemoveAllChildren(); err != nil {
			return util.StatusWrapfWithCode(err, codes.Internal, "Failed to clean directory %#v", directoryPath)
		}
		return nil
	}
}
