package configuration

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/go-jsonnet"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Access control scopes that may be configured.
const (
	AccessControlScopeUser  = "user"
	AccessControlScopeBroad = "broad"
)

// ApplicationConfiguration of runas_agent.
type ApplicationConfiguration struct {
	// Directory in which settings and command files are staged.
	StagingDirectoryPath string `json:"stagingDirectoryPath"`
	// Directories of the build step to which the user is granted
	// read and write access.
	CheckoutDirectoryPath  string `json:"checkoutDirectoryPath"`
	TemporaryDirectoryPath string `json:"temporaryDirectoryPath"`
	// Directories in which tools are installed, keyed by tool name.
	ToolDirectories map[string]string `json:"toolDirectories"`
	// Either "user" or "broad". "broad" grants every account on the
	// system access and should only be used with generic accounts.
	AccessControlScope string `json:"accessControlScope"`
	// Extension of launcher scripts and the run-as tool. Defaults
	// to the one that is native to the platform.
	CommandFileExtension string `json:"commandFileExtension"`
	// Configuration parameters of the agent, which act as the
	// lowest precedence source of credentials.
	ConfigParameters map[string]string `json:"configParameters"`
	// Remove leftover files from the staging directory on startup.
	CleanStagingDirectoryOnStartup bool `json:"cleanStagingDirectoryOnStartup"`
	// Remove all files from the temporary directory once the build
	// step has completed.
	CleanTemporaryDirectoryAfterBuild bool `json:"cleanTemporaryDirectoryAfterBuild"`

	Metrics MetricsConfiguration `json:"metrics"`
	Tracing TracingConfiguration `json:"tracing"`

	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// MetricsConfiguration controls where Prometheus metrics are exported
// to when the agent exits. Metrics are not exported if neither
// destination is set.
type MetricsConfiguration struct {
	// Path of a file in the text exposition format, to be picked up
	// by the textfile collector of node_exporter.
	TextfilePath string `json:"textfilePath"`
	// URL of a Pushgateway.
	PushgatewayURL string `json:"pushgatewayUrl"`
	PushgatewayJob string `json:"pushgatewayJob"`
}

// TracingConfiguration controls where OpenTelemetry spans are sent.
// Tracing is disabled if no endpoint is set.
type TracingConfiguration struct {
	// Jaeger collector endpoint, such as
	// "http://localhost:14268/api/traces".
	JaegerCollectorEndpoint string `json:"jaegerCollectorEndpoint"`
	ServiceName             string `json:"serviceName"`
}

// GetApplicationConfiguration reads the configuration from a Jsonnet
// file and fills in default values. Environment variables are exposed
// to the configuration as external variables.
func GetApplicationConfiguration(path, defaultCommandFileExtension string) (*ApplicationConfiguration, error) {
	vm := jsonnet.MakeVM()
	for _, environmentVariable := range os.Environ() {
		if name, value, ok := strings.Cut(environmentVariable, "="); ok {
			vm.ExtVar(name, value)
		}
	}
	evaluated, err := vm.EvaluateFile(path)
	if err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to evaluate configuration")
	}
	return parseApplicationConfiguration([]byte(evaluated), defaultCommandFileExtension)
}

func parseApplicationConfiguration(data []byte, defaultCommandFileExtension string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&configuration); err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to decode configuration")
	}
	setDefaultValues(&configuration, defaultCommandFileExtension)
	if err := validate(&configuration); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func setDefaultValues(configuration *ApplicationConfiguration, defaultCommandFileExtension string) {
	if configuration.AccessControlScope == "" {
		configuration.AccessControlScope = AccessControlScopeUser
	}
	if configuration.CommandFileExtension == "" {
		configuration.CommandFileExtension = defaultCommandFileExtension
	}
	if configuration.LogLevel == "" {
		configuration.LogLevel = "info"
	}
	if configuration.LogFormat == "" {
		configuration.LogFormat = "console"
	}
	if configuration.Metrics.PushgatewayJob == "" {
		configuration.Metrics.PushgatewayJob = "runas_agent"
	}
	if configuration.Tracing.ServiceName == "" {
		configuration.Tracing.ServiceName = "runas_agent"
	}
}

func validate(configuration *ApplicationConfiguration) error {
	for _, field := range [...]struct {
		name  string
		value string
	}{
		{"stagingDirectoryPath", configuration.StagingDirectoryPath},
		{"checkoutDirectoryPath", configuration.CheckoutDirectoryPath},
		{"temporaryDirectoryPath", configuration.TemporaryDirectoryPath},
	} {
		if field.value == "" {
			return status.Errorf(codes.InvalidArgument, "No %s specified", field.name)
		}
	}
	switch configuration.AccessControlScope {
	case AccessControlScopeUser, AccessControlScopeBroad:
	default:
		return status.Errorf(codes.InvalidArgument, "Invalid access control scope %#v", configuration.AccessControlScope)
	}
	switch configuration.LogFormat {
	case "console", "json":
	default:
		return status.Errorf(codes.InvalidArgument, "Invalid log format %#v", configuration.LogFormat)
	}
	return nil
}
