package filesystem

import (
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type staticToolLocator struct {
	toolDirectories map[string]string
}

// NewStaticToolLocator creates a ToolLocator that returns tool
// directories from a fixed map, typically taken from the agent's
// configuration.
func NewStaticToolLocator(toolDirectories map[string]string) runas.ToolLocator {
	return &staticToolLocator{
		toolDirectories: toolDirectories,
	}
}

func (l *staticToolLocator) GetToolPath(toolName string) (string, error) {
	if directory, ok := l.toolDirectories[toolName]; ok {
		return directory, nil
	}
	return "", status.Errorf(codes.NotFound, "Tool %#v is not installed", toolName)
}
