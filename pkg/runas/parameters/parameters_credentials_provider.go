package parameters

import (
	"strings"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"
)

type parametersCredentialsProvider struct {
	parametersService ParametersService
	argumentsService  runas.CommandLineArgumentsService
}

// NewParametersCredentialsProvider creates a CredentialsProvider that
// reads credentials from build parameters. Credentials are only
// considered to be configured if both the user name and the password
// are non-blank.
//
// As the password is passed to the run-as tool on the command line,
// logging of command lines is disabled for build steps for which
// credentials are returned.
func NewParametersCredentialsProvider(parametersService ParametersService, argumentsService runas.CommandLineArgumentsService) runas.CredentialsProvider {
	return &parametersCredentialsProvider{
		parametersService: parametersService,
		argumentsService:  argumentsService,
	}
}

func (p *parametersCredentialsProvider) tryGetNonBlankParameter(name string) (string, bool) {
	value, ok := p.parametersService.TryGetParameter(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func (p *parametersCredentialsProvider) TryGetCredentials() (*runas.Credentials, bool, error) {
	user, ok := p.tryGetNonBlankParameter(UserParameter)
	if !ok {
		return nil, false, nil
	}
	password, ok := p.tryGetNonBlankParameter(PasswordParameter)
	if !ok {
		return nil, false, nil
	}

	var extraArguments []runas.Argument
	if additionalArguments, ok := p.tryGetNonBlankParameter(AdditionalArgumentsParameter); ok {
		var err error
		extraArguments, err = p.argumentsService.ParseCommandLineArguments(additionalArguments)
		if err != nil {
			return nil, false, util.StatusWrapf(err, "Failed to parse parameter %#v", AdditionalArgumentsParameter)
		}
	}

	p.parametersService.DisableLoggingOfCommandLine()
	return &runas.Credentials{
		User:           runas.NewNamedPrincipal(user),
		Password:       runas.NewPassword(password),
		ExtraArguments: extraArguments,
	}, true, nil
}
