package parameters

import (
	"strings"
)

const (
	// BuildFeatureType is the type of the build feature through
	// which run-as credentials may be declared.
	BuildFeatureType = "runAs"

	// UserParameter contains the name of the user as which build
	// steps run.
	UserParameter = "teamcity.runAs.username"
	// PasswordParameter contains the password of that user.
	PasswordParameter = "teamcity.runAs.password"
	// AdditionalArgumentsParameter contains additional arguments
	// for the run-as tool.
	AdditionalArgumentsParameter = "teamcity.runAs.additionalCommandLine"
	// UIEnabledParameter is a configuration parameter that, when
	// set to "false", causes build feature and runner parameters
	// to be ignored.
	UIEnabledParameter = "teamcity.runAs.ui.enabled"

	// LogCommandLineParameter is the configuration parameter that
	// controls whether the agent logs command lines of build steps.
	LogCommandLineParameter = "teamcity.buildLog.logCommandLine"
)

// RunnerParametersService provides access to the parameters of the
// build step (runner parameters) and those of the build configuration
// and agent (configuration parameters).
type RunnerParametersService interface {
	TryGetRunnerParameter(name string) (string, bool)
	TryGetConfigParameter(name string) (string, bool)
}

// BuildFeatureParametersService provides access to the parameters of
// the build features of a build. As multiple features of the same type
// may be present, a list of values is returned.
type BuildFeatureParametersService interface {
	GetBuildFeatureParameters(featureType, name string) []string
}

// BuildRunnerContext allows changing the configuration of the build
// step that is about to run.
type BuildRunnerContext interface {
	AddConfigParameter(name, value string)
}

// ParametersService resolves run-as parameters from the layered
// parameter sources of a build step.
type ParametersService interface {
	TryGetParameter(name string) (string, bool)
	DisableLoggingOfCommandLine()
}

type parametersService struct {
	runnerParametersService       RunnerParametersService
	buildFeatureParametersService BuildFeatureParametersService
	buildRunnerContext            BuildRunnerContext
}

// NewParametersService creates a ParametersService that looks up
// parameters in the following order:
//
//  1. The first value declared by a build feature of type
//     BuildFeatureType.
//  2. The runner parameters of the build step.
//  3. The configuration parameters.
//
// If the configuration parameter UIEnabledParameter is set to "false",
// only the configuration parameters are consulted. This permits
// administrators to enforce credentials at the agent level.
func NewParametersService(runnerParametersService RunnerParametersService, buildFeatureParametersService BuildFeatureParametersService, buildRunnerContext BuildRunnerContext) ParametersService {
	return &parametersService{
		runnerParametersService:       runnerParametersService,
		buildFeatureParametersService: buildFeatureParametersService,
		buildRunnerContext:            buildRunnerContext,
	}
}

func (s *parametersService) isUIDisabled() bool {
	value, ok := s.runnerParametersService.TryGetConfigParameter(UIEnabledParameter)
	return ok && strings.EqualFold(strings.TrimSpace(value), "false")
}

func (s *parametersService) TryGetParameter(name string) (string, bool) {
	if !s.isUIDisabled() {
		if values := s.buildFeatureParametersService.GetBuildFeatureParameters(BuildFeatureType, name); len(values) > 0 {
			return values[0], true
		}
		if value, ok := s.runnerParametersService.TryGetRunnerParameter(name); ok {
			return value, true
		}
	}
	return s.runnerParametersService.TryGetConfigParameter(name)
}

func (s *parametersService) DisableLoggingOfCommandLine() {
	s.buildRunnerContext.AddConfigParameter(LogCommandLineParameter, "false")
}
