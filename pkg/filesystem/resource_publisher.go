package filesystem

import (
	"context"
	"path/filepath"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ResourcePublisher writes the files of an invocation to disk, so that
// the invocation can be launched.
type ResourcePublisher interface {
	PublishResources(ctx context.Context, invocation runas.Invocation) error
}

type directoryResourcePublisher struct {
	directory     filesystem.Directory
	directoryPath string
}

// NewDirectoryResourcePublisher creates a ResourcePublisher that
// writes files into a single staging directory. Files are created
// exclusively and are only accessible by the agent's own user. Any
// additional access needs to be granted through the invocation's
// access control list.
func NewDirectoryResourcePublisher(directory filesystem.Directory, directoryPath string) ResourcePublisher {
	return &directoryResourcePublisher{
		directory:     directory,
		directoryPath: filepath.Clean(directoryPath),
	}
}

// getStagedFileName returns the name of a staged file within the
// staging directory.
func getStagedFileName(directoryPath, filePath string) (path.Component, error) {
	if filepath.Dir(filePath) != directoryPath {
		return path.Component{}, status.Errorf(codes.InvalidArgument, "File %#v is not located in staging directory %#v", filePath, directoryPath)
	}
	name, ok := path.NewComponent(filepath.Base(filePath))
	if !ok {
		return path.Component{}, status.Errorf(codes.InvalidArgument, "File %#v has an invalid name", filePath)
	}
	return name, nil
}

func (p *directoryResourcePublisher) PublishResources(ctx context.Context, invocation runas.Invocation) error {
	for _, file := range invocation.FileResources() {
		if file.Publication != runas.PublishBeforeBuild {
			continue
		}
		name, err := getStagedFileName(p.directoryPath, file.Path)
		if err != nil {
			return err
		}
		if err := p.writeFile(name, file.Content); err != nil {
			return util.StatusWrapfWithCode(err, codes.Internal, "Failed to stage file %#v", file.Path)
		}
	}
	return nil
}

func (p *directoryResourcePublisher) writeFile(name path.Component, content string) error {
	f, err := p.directory.OpenWrite(name, filesystem.CreateExcl(0o600))
	if err != nil {
		return err
	}
	if _, err := f.WriteAt([]byte(content), 0); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
