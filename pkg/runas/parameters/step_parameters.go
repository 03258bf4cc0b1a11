package parameters

import (
	"strings"
)

// BuildFeature declared on a build configuration.
type BuildFeature struct {
	Type       string
	Parameters map[string]string
}

// StepParameters holds all parameters that are visible to a single
// build step. It implements RunnerParametersService,
// BuildFeatureParametersService and BuildRunnerContext.
//
// StepParameters is not safe for concurrent use. Every build step is
// expected to have its own instance.
type StepParameters struct {
	Runner   map[string]string
	Config   map[string]string
	Features []BuildFeature
}

var (
	_ RunnerParametersService       = (*StepParameters)(nil)
	_ BuildFeatureParametersService = (*StepParameters)(nil)
	_ BuildRunnerContext            = (*StepParameters)(nil)
)

// TryGetRunnerParameter returns the value of a runner parameter.
func (p *StepParameters) TryGetRunnerParameter(name string) (string, bool) {
	value, ok := p.Runner[name]
	return value, ok
}

// TryGetConfigParameter returns the value of a configuration
// parameter.
func (p *StepParameters) TryGetConfigParameter(name string) (string, bool) {
	value, ok := p.Config[name]
	return value, ok
}

// GetBuildFeatureParameters returns the values of a parameter for all
// build features of a given type, in declaration order.
func (p *StepParameters) GetBuildFeatureParameters(featureType, name string) []string {
	var values []string
	for _, feature := range p.Features {
		if feature.Type != featureType {
			continue
		}
		if value, ok := feature.Parameters[name]; ok {
			values = append(values, value)
		}
	}
	return values
}

// AddConfigParameter sets a configuration parameter.
func (p *StepParameters) AddConfigParameter(name, value string) {
	if p.Config == nil {
		p.Config = map[string]string{}
	}
	p.Config[name] = value
}

// LogsCommandLine returns whether the command line of the build step
// may be logged. Logging is enabled, unless it has been disabled
// explicitly through LogCommandLineParameter.
func (p *StepParameters) LogsCommandLine() bool {
	value, ok := p.TryGetConfigParameter(LogCommandLineParameter)
	return !ok || !strings.EqualFold(strings.TrimSpace(value), "false")
}
