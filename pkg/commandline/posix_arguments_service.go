package commandline

import (
	"strings"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/kballard/go-shellquote"

	"google.golang.org/grpc/codes"
)

type posixArgumentsService struct{}

// NewPOSIXArgumentsService creates a CommandLineArgumentsService that
// renders and parses command lines using the quoting rules of the
// POSIX shell.
func NewPOSIXArgumentsService() runas.CommandLineArgumentsService {
	return posixArgumentsService{}
}

func (posixArgumentsService) CreateCommandLineString(arguments []runas.Argument) string {
	parts := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if argument.Kind == runas.FlagArgument {
			parts = append(parts, argument.Value)
		} else {
			parts = append(parts, shellquote.Join(argument.Value))
		}
	}
	return strings.Join(parts, " ")
}

func (posixArgumentsService) ParseCommandLineArguments(commandLine string) ([]runas.Argument, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to split command line")
	}
	return runas.NewParameterArguments(words...), nil
}
