package runas

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SettingsGenerator serializes credentials into the contents of the
// settings file that is passed to the run-as tool.
type SettingsGenerator interface {
	GenerateSettings(credentials *Credentials) (string, error)
}

type argsFileSettingsGenerator struct{}

// NewArgsFileSettingsGenerator creates a SettingsGenerator that emits
// an arguments file for the run-as tool. The first line selects the
// user. Additional arguments follow, one per line, in the order in
// which they were provided. The password is never written to this
// file, as it is passed to the run-as tool separately.
func NewArgsFileSettingsGenerator() SettingsGenerator {
	return argsFileSettingsGenerator{}
}

func (argsFileSettingsGenerator) GenerateSettings(credentials *Credentials) (string, error) {
	if credentials.User.Kind() != NamedPrincipalKind || credentials.User.IsBlank() {
		return "", status.Errorf(codes.InvalidArgument, "Cannot generate settings for user %s", credentials.User)
	}
	var sb strings.Builder
	sb.WriteString("-u:")
	sb.WriteString(credentials.User.Identity())
	sb.WriteString("\n")
	for _, argument := range credentials.ExtraArguments {
		if strings.ContainsAny(argument.Value, "\r\n") {
			return "", status.Errorf(codes.InvalidArgument, "Additional argument %#v contains a newline", argument.Value)
		}
		sb.WriteString(argument.Value)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
