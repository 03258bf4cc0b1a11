package filesystem

import (
	"os"
	"path/filepath"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/uuid"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localFileService struct {
	stagingDirectoryPath   string
	checkoutDirectoryPath  string
	temporaryDirectoryPath string
}

// NewLocalFileService creates a FileService for a build step whose
// directories reside on the local file system. Files are staged in a
// dedicated directory. Their names are random UUIDs, so that build
// steps running concurrently never allocate the same name.
func NewLocalFileService(stagingDirectoryPath, checkoutDirectoryPath, temporaryDirectoryPath string) (runas.FileService, error) {
	for _, p := range [...]string{stagingDirectoryPath, checkoutDirectoryPath, temporaryDirectoryPath} {
		if !filepath.IsAbs(p) {
			return nil, status.Errorf(codes.InvalidArgument, "Path %#v is not absolute", p)
		}
	}
	return &localFileService{
		stagingDirectoryPath:   filepath.Clean(stagingDirectoryPath),
		checkoutDirectoryPath:  filepath.Clean(checkoutDirectoryPath),
		temporaryDirectoryPath: filepath.Clean(temporaryDirectoryPath),
	}, nil
}

func (fs *localFileService) TempFileName(extension string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate file name")
	}
	return filepath.Join(fs.stagingDirectoryPath, id.String()+extension), nil
}

func (fs *localFileService) CheckoutDirectory() string {
	return fs.checkoutDirectoryPath
}

func (fs *localFileService) TempDirectory() string {
	return fs.temporaryDirectoryPath
}

func (fs *localFileService) ValidatePath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return status.Errorf(codes.NotFound, "File %#v does not exist", path)
	} else if err != nil {
		return util.StatusWrapfWithCode(err, codes.FailedPrecondition, "Failed to inspect file %#v", path)
	}
	if !info.Mode().IsRegular() {
		return status.Errorf(codes.FailedPrecondition, "Path %#v is not a regular file", path)
	}
	return checkReadable(path)
}
