package commandline

import (
	"strings"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type windowsArgumentsService struct{}

// NewWindowsArgumentsService creates a CommandLineArgumentsService
// that renders and parses command lines following the conventions of
// the Microsoft C runtime. These are the rules that apply to
// arguments passed to the vast majority of Windows programs.
func NewWindowsArgumentsService() runas.CommandLineArgumentsService {
	return windowsArgumentsService{}
}

// quoteWindowsArgument quotes an argument if it is empty or contains
// whitespace or double quotes. Backslashes are only special when they
// precede a double quote.
func quoteWindowsArgument(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\v\"") {
		return s
	}
	var sb strings.Builder
	sb.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			backslashes++
		case '"':
			sb.WriteString(strings.Repeat("\\", 2*backslashes+1))
			sb.WriteByte('"')
			backslashes = 0
		default:
			sb.WriteString(strings.Repeat("\\", backslashes))
			sb.WriteByte(c)
			backslashes = 0
		}
	}
	sb.WriteString(strings.Repeat("\\", 2*backslashes))
	sb.WriteByte('"')
	return sb.String()
}

func (windowsArgumentsService) CreateCommandLineString(arguments []runas.Argument) string {
	parts := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		if argument.Kind == runas.FlagArgument {
			parts = append(parts, argument.Value)
		} else {
			parts = append(parts, quoteWindowsArgument(argument.Value))
		}
	}
	return strings.Join(parts, " ")
}

func (windowsArgumentsService) ParseCommandLineArguments(commandLine string) ([]runas.Argument, error) {
	var words []string
	var current strings.Builder
	inWord, inQuotes := false, false
	backslashes := 0
	for i := 0; i < len(commandLine); i++ {
		c := commandLine[i]
		switch {
		case c == '\\':
			backslashes++
			inWord = true
			continue
		case c == '"':
			current.WriteString(strings.Repeat("\\", backslashes/2))
			if backslashes%2 == 1 {
				current.WriteByte('"')
			} else {
				inQuotes = !inQuotes
			}
			inWord = true
		case (c == ' ' || c == '\t') && !inQuotes:
			current.WriteString(strings.Repeat("\\", backslashes))
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteString(strings.Repeat("\\", backslashes))
			current.WriteByte(c)
			inWord = true
		}
		backslashes = 0
	}
	if inQuotes {
		return nil, status.Error(codes.InvalidArgument, "Command line contains an unterminated double quote")
	}
	current.WriteString(strings.Repeat("\\", backslashes))
	if inWord {
		words = append(words, current.String())
	}
	return runas.NewParameterArguments(words...), nil
}
