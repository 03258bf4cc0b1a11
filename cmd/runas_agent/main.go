package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/cleaner"
	configuration "github.com/MartinWitt/teamcity-runas-plugin/pkg/configuration/runas_agent"
	re_filesystem "github.com/MartinWitt/teamcity-runas-plugin/pkg/filesystem"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas/parameters"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/telemetry"
	"github.com/buildbarn/bb-storage/pkg/filesystem"
	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
)

func main() {
	var configurationPath string
	var runnerParameters, featureParameters map[string]string
	var dryRun bool
	flags := pflag.NewFlagSet("runas_agent", pflag.ExitOnError)
	flags.StringVar(&configurationPath, "config", "", "Path of the Jsonnet configuration file")
	flags.StringToStringVar(&runnerParameters, "runner-parameter", nil, "Parameter of the build step, as name=value")
	flags.StringToStringVar(&featureParameters, "feature-parameter", nil, "Parameter of the run-as build feature, as name=value")
	flags.BoolVar(&dryRun, "dry-run", false, "Print the transformed invocation instead of running it")
	flags.Parse(os.Args[1:])
	if configurationPath == "" || flags.NArg() < 1 {
		log.Fatal().Msg("Usage: runas_agent --config runas_agent.jsonnet [flags] -- command [arguments...]")
	}

	applicationConfiguration, err := configuration.GetApplicationConfiguration(configurationPath, defaultCommandFileExtension)
	if err != nil {
		log.Fatal().Err(err).Str("path", configurationPath).Msg("Failed to read configuration")
	}
	logger, err := newLogger(applicationConfiguration)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create logger")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p, err := newPlatform()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize platform")
	}

	tracerProvider, shutdownTracerProvider, err := telemetry.NewTracerProvider(&applicationConfiguration.Tracing)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create tracer provider")
	}
	otel.SetTracerProvider(tracerProvider)
	// Spans and metrics can only be exported once the build step
	// has completed, as the agent exits afterwards.
	flushTelemetry := func() {
		if err := shutdownTracerProvider(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to export spans")
		}
		if err := telemetry.ExportMetrics(context.Background(), &applicationConfiguration.Metrics, prometheus.DefaultGatherer); err != nil {
			logger.Error().Err(err).Msg("Failed to export metrics")
		}
	}

	// Parameters of this build step. Agent-level configuration
	// parameters are copied, as the build step may override them.
	stepParameters := &parameters.StepParameters{
		Runner: runnerParameters,
		Config: map[string]string{},
	}
	for name, value := range applicationConfiguration.ConfigParameters {
		stepParameters.Config[name] = value
	}
	if len(featureParameters) > 0 {
		stepParameters.Features = []parameters.BuildFeature{{
			Type:       parameters.BuildFeatureType,
			Parameters: featureParameters,
		}}
	}
	credentialsProvider := parameters.NewParametersCredentialsProvider(
		parameters.NewParametersService(stepParameters, stepParameters, stepParameters),
		p.argumentsService)

	fileService, err := re_filesystem.NewLocalFileService(
		applicationConfiguration.StagingDirectoryPath,
		applicationConfiguration.CheckoutDirectoryPath,
		applicationConfiguration.TemporaryDirectoryPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid directory configuration")
	}
	stagingDirectory, err := filesystem.NewLocalDirectory(path.LocalFormat.NewParser(applicationConfiguration.StagingDirectoryPath))
	if err != nil {
		logger.Fatal().Err(err).Str("path", applicationConfiguration.StagingDirectoryPath).Msg("Failed to open staging directory")
	}
	if applicationConfiguration.CleanStagingDirectoryOnStartup {
		if err := cleaner.NewDirectoryCleaner(stagingDirectory, applicationConfiguration.StagingDirectoryPath)(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to clean staging directory")
		}
	}

	accessControlApplier := accesscontrol.NewCommandRunningAccessControlApplier(p.commandTranslator, accesscontrol.NewExecCommandRunner())
	var accessControlComposer runas.AccessControlComposer
	switch applicationConfiguration.AccessControlScope {
	case configuration.AccessControlScopeBroad:
		logger.Warn().Msg("Build steps are granted access for all users on the system")
		accessControlComposer = runas.NewBroadAccessControlComposer(fileService)
	default:
		accessControlComposer = runas.NewScopedAccessControlComposer(runas.NewWorkspaceBaselineAccessControlProvider(fileService))
	}

	builder := runas.NewTracingCommandLineSetupBuilder(
		runas.NewMetricsCommandLineSetupBuilder(
			runas.NewRunAsCommandLineBuilder(
				credentialsProvider,
				fileService,
				re_filesystem.NewStaticToolLocator(applicationConfiguration.ToolDirectories),
				p.argumentsService,
				runas.NewArgsFileSettingsGenerator(),
				p.launcherScriptGenerator,
				accessControlComposer,
				accessControlApplier,
				runas.NewZerologRunAsLogger(logger.With().Str("component", "audit").Logger()),
				applicationConfiguration.CommandFileExtension)),
		tracerProvider)

	args := flags.Args()
	invocation, err := builder.Build(ctx, runas.Invocation{
		ToolPath:  args[0],
		Arguments: runas.NewParameterArguments(args[1:]...),
	})
	if err != nil {
		flushTelemetry()
		logger.Fatal().Err(err).Msg("Failed to build invocation")
	}
	// Credentials providers may disable logging of the command
	// line, as it is then passed a password.
	logCommandLine := stepParameters.LogsCommandLine()
	if dryRun {
		err := printInvocation(invocation, logCommandLine)
		stagingDirectory.Close()
		flushTelemetry()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to print invocation")
		}
		return
	}

	cleaners := []cleaner.Cleaner{
		cleaner.NewStagedFileCleaner(stagingDirectory, applicationConfiguration.StagingDirectoryPath, invocation),
	}
	var temporaryDirectory filesystem.DirectoryCloser
	if applicationConfiguration.CleanTemporaryDirectoryAfterBuild {
		temporaryDirectory, err = filesystem.NewLocalDirectory(path.LocalFormat.NewParser(applicationConfiguration.TemporaryDirectoryPath))
		if err != nil {
			logger.Fatal().Err(err).Str("path", applicationConfiguration.TemporaryDirectoryPath).Msg("Failed to open temporary directory")
		}
		cleaners = append(cleaners, cleaner.NewDirectoryCleaner(temporaryDirectory, applicationConfiguration.TemporaryDirectoryPath))
	}

	exitCode := run(ctx, logger, invocation, logCommandLine, stagingDirectory, applicationConfiguration.StagingDirectoryPath, accessControlApplier, cleaner.NewChainedCleaner(cleaners))
	if temporaryDirectory != nil {
		temporaryDirectory.Close()
	}
	stagingDirectory.Close()
	flushTelemetry()
	cancel()
	os.Exit(exitCode)
}

// run stages the resources of an invocation, launches it and returns
// its exit code. The cleaner is invoked afterwards, even if the
// invocation could not be launched.
func run(ctx context.Context, logger zerolog.Logger, invocation runas.Invocation, logCommandLine bool, stagingDirectory filesystem.Directory, stagingDirectoryPath string, accessControlApplier runas.AccessControlApplier, cleanAfterBuild cleaner.Cleaner) int {
	defer func() {
		if err := cleanAfterBuild(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to clean up after build step")
		}
	}()

	publisher := re_filesystem.NewMetricsResourcePublisher(re_filesystem.NewDirectoryResourcePublisher(stagingDirectory, stagingDirectoryPath))
	if err := publisher.PublishResources(ctx, invocation); err != nil {
		logger.Error().Err(err).Msg("Failed to publish resources")
		return 1
	}
	if accessControlResource, ok := invocation.AccessControlResource(); ok {
		if err := accessControlApplier.ApplyAccessControlList(ctx, accessControlResource.AccessControlList()); err != nil {
			logger.Error().Err(err).Msg("Failed to apply access control list")
			return 1
		}
	}

	arguments := make([]string, 0, len(invocation.Arguments))
	for _, argument := range invocation.Arguments {
		arguments = append(arguments, argument.Value)
	}
	if logCommandLine {
		logger.Info().Str("tool_path", invocation.ToolPath).Strs("arguments", redactArguments(invocation)).Msg("Launching build step")
	} else {
		logger.Info().Str("tool_path", invocation.ToolPath).Msg("Launching build step")
	}
	cmd := exec.CommandContext(ctx, invocation.ToolPath, arguments...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		logger.Error().Err(err).Str("tool_path", invocation.ToolPath).Msg("Failed to launch build step")
		return 1
	}
	return 0
}

func newLogger(applicationConfiguration *configuration.ApplicationConfiguration) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(applicationConfiguration.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}
	var logger zerolog.Logger
	if applicationConfiguration.LogFormat == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

// redactArguments returns the arguments of an invocation. When the
// invocation runs as another user, its last argument is the user's
// password, which is redacted.
func redactArguments(invocation runas.Invocation) []string {
	_, runsAsUser := invocation.AccessControlResource()
	arguments := make([]string, 0, len(invocation.Arguments))
	for i, argument := range invocation.Arguments {
		if runsAsUser && i == len(invocation.Arguments)-1 {
			arguments = append(arguments, runas.Password{}.String())
		} else {
			arguments = append(arguments, argument.Value)
		}
	}
	return arguments
}

// printInvocation writes an invocation to stdout. If logging of the
// command line is disabled, arguments and the contents of staged
// files are omitted, as the latter contain the original command line.
func printInvocation(invocation runas.Invocation, logCommandLine bool) error {
	type printedFile struct {
		Path    string `json:"path"`
		Content string `json:"content,omitempty"`
	}
	type printedEntry struct {
		Target      string `json:"target"`
		Principal   string `json:"principal"`
		Permissions string `json:"permissions"`
		Recursive   bool   `json:"recursive"`
	}
	printed := struct {
		ToolPath      string         `json:"toolPath"`
		Arguments     []string       `json:"arguments,omitempty"`
		Files         []printedFile  `json:"files,omitempty"`
		AccessControl []printedEntry `json:"accessControl,omitempty"`
	}{
		ToolPath: invocation.ToolPath,
	}
	if logCommandLine {
		printed.Arguments = redactArguments(invocation)
	}
	for _, file := range invocation.FileResources() {
		f := printedFile{Path: file.Path}
		if logCommandLine {
			f.Content = file.Content
		}
		printed.Files = append(printed.Files, f)
	}
	if accessControlResource, ok := invocation.AccessControlResource(); ok {
		for _, entry := range accessControlResource.AccessControlList() {
			printed.AccessControl = append(printed.AccessControl, printedEntry{
				Target:      entry.Target,
				Principal:   entry.Principal.String(),
				Permissions: entry.Permissions.String(),
				Recursive:   entry.Recursive,
			})
		}
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(printed)
}
