package runas

import (
	"context"
	"path/filepath"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// ToolName is the name under which the run-as tool is
	// registered with the ToolLocator.
	ToolName = "runAs"
	// ToolFileName is the file name of the run-as tool, without
	// its extension. The extension is equal to that of the command
	// file, as the tool is a script itself.
	ToolFileName = "runAs"
	// SettingsFileExtension is the extension of the staged file
	// containing the run-as tool's settings.
	SettingsFileExtension = ".args"
)

// CommandLineSetupBuilder transforms the invocation of a build step
// into one that has the desired properties.
type CommandLineSetupBuilder interface {
	Build(ctx context.Context, invocation Invocation) (Invocation, error)
}

type runAsCommandLineBuilder struct {
	credentialsProvider     CredentialsProvider
	fileService             FileService
	toolLocator             ToolLocator
	argumentsService        CommandLineArgumentsService
	settingsGenerator       SettingsGenerator
	launcherScriptGenerator LauncherScriptGenerator
	accessControlComposer   AccessControlComposer
	accessControlApplier    AccessControlApplier
	runAsLogger             RunAsLogger
	commandFileExtension    string
}

// NewRunAsCommandLineBuilder creates a CommandLineSetupBuilder that
// rewrites invocations to run as another user, if credentials for such
// a user are configured. Without credentials, invocations are returned
// as is.
//
// The original command line is wrapped in a launcher script. Both this
// script and a settings file are staged as resources of the resulting
// invocation, which launches the run-as tool with the paths of these
// files and the user's password as its arguments. The access control
// list that permits the user to run the launcher script is composed by
// the AccessControlComposer and accumulated in the invocation's
// AccessControlResource.
//
// Invocations are only passed to the RunAsLogger if the
// AccessControlComposer grants access to the user specifically.
func NewRunAsCommandLineBuilder(
	credentialsProvider CredentialsProvider,
	fileService FileService,
	toolLocator ToolLocator,
	argumentsService CommandLineArgumentsService,
	settingsGenerator SettingsGenerator,
	launcherScriptGenerator LauncherScriptGenerator,
	accessControlComposer AccessControlComposer,
	accessControlApplier AccessControlApplier,
	runAsLogger RunAsLogger,
	commandFileExtension string,
) CommandLineSetupBuilder {
	return &runAsCommandLineBuilder{
		credentialsProvider:     credentialsProvider,
		fileService:             fileService,
		toolLocator:             toolLocator,
		argumentsService:        argumentsService,
		settingsGenerator:       settingsGenerator,
		launcherScriptGenerator: launcherScriptGenerator,
		accessControlComposer:   accessControlComposer,
		accessControlApplier:    accessControlApplier,
		runAsLogger:             runAsLogger,
		commandFileExtension:    commandFileExtension,
	}
}

func (b *runAsCommandLineBuilder) Build(ctx context.Context, invocation Invocation) (Invocation, error) {
	credentials, ok, err := b.credentialsProvider.TryGetCredentials()
	if err != nil {
		return Invocation{}, util.StatusWrap(err, "Failed to obtain run-as credentials")
	}
	if !ok {
		return invocation, nil
	}
	if invocation.ToolPath == "" {
		return Invocation{}, status.Error(codes.InvalidArgument, "Invocation does not have a tool path")
	}

	// Settings file.
	settings, err := b.settingsGenerator.GenerateSettings(credentials)
	if err != nil {
		return Invocation{}, util.StatusWrap(err, "Failed to generate run-as settings")
	}
	settingsFile, err := b.fileService.TempFileName(SettingsFileExtension)
	if err != nil {
		return Invocation{}, util.StatusWrapWithCode(err, codes.Internal, "Failed to allocate settings file")
	}

	// Command file, wrapping the original command line.
	commandLineArguments := make([]Argument, 0, len(invocation.Arguments)+1)
	commandLineArguments = append(commandLineArguments, Argument{Value: invocation.ToolPath, Kind: ParameterArgument})
	commandLineArguments = append(commandLineArguments, invocation.Arguments...)
	script, err := b.launcherScriptGenerator.GenerateLauncherScript(LauncherScriptParameters{
		CommandLine: b.argumentsService.CreateCommandLineString(commandLineArguments),
	})
	if err != nil {
		return Invocation{}, util.StatusWrap(err, "Failed to generate launcher script")
	}
	commandFile, err := b.fileService.TempFileName(b.commandFileExtension)
	if err != nil {
		return Invocation{}, util.StatusWrapWithCode(err, codes.Internal, "Failed to allocate command file")
	}

	// Access control, extending any entries that were added by
	// earlier transformations of the same invocation.
	acl, err := b.accessControlComposer.ComposeAccessControlList(credentials.User, commandFile)
	if err != nil {
		return Invocation{}, util.StatusWrap(err, "Failed to compose access control list")
	}
	existingAccessControlResource, _ := invocation.AccessControlResource()
	if b.accessControlComposer.Scope() == UserScope {
		// Entries granted by earlier transformations are retained,
		// so these may not widen access beyond the user either.
		for _, entry := range existingAccessControlResource.AccessControlList() {
			if entry.Principal.Kind() == AllPrincipalsKind {
				return Invocation{}, status.Errorf(codes.InvalidArgument, "Invocation already grants %s access to %#v, while only %s may be granted access", entry.Principal, entry.Target, credentials.User)
			}
		}
	}
	accessControlResource := existingAccessControlResource.Extend(acl)

	// Only resolve the tool after staging succeeded, so that
	// staging errors take precedence.
	toolPath, err := b.getToolPath(ctx)
	if err != nil {
		return Invocation{}, err
	}

	resources := append(
		invocation.withoutAccessControlResource(),
		&FileResource{
			Path:        settingsFile,
			Content:     settings,
			Publication: PublishBeforeBuild,
		},
		&FileResource{
			Path:        commandFile,
			Content:     script,
			Publication: PublishBeforeBuild,
		},
		accessControlResource)
	runAsInvocation := Invocation{
		ToolPath:  toolPath,
		Arguments: NewParameterArguments(settingsFile, commandFile, credentials.Password.Reveal()),
		Resources: resources,
	}
	if b.accessControlComposer.Scope() == UserScope {
		b.runAsLogger.LogRunAs(runAsInvocation)
	}
	return runAsInvocation, nil
}

// getToolPath returns the path of the run-as tool. The tool needs to
// be present, and the agent's own user is permitted to execute it.
func (b *runAsCommandLineBuilder) getToolPath(ctx context.Context) (string, error) {
	toolDirectory, err := b.toolLocator.GetToolPath(ToolName)
	if err != nil {
		return "", util.StatusWrapf(err, "Failed to locate tool %#v", ToolName)
	}
	if !filepath.IsAbs(toolDirectory) {
		return "", status.Errorf(codes.InvalidArgument, "Directory of tool %#v is not an absolute path: %#v", ToolName, toolDirectory)
	}
	toolPath := filepath.Join(toolDirectory, ToolFileName+b.commandFileExtension)
	if err := b.fileService.ValidatePath(toolPath); err != nil {
		return "", util.StatusWrapf(err, "Invalid run-as tool %#v", toolPath)
	}
	if err := b.accessControlApplier.ApplyAccessControlList(ctx, AccessControlList{{
		Target:      toolPath,
		Principal:   CurrentPrincipal,
		Permissions: AllowExecute,
	}}); err != nil {
		return "", util.StatusWrapf(err, "Failed to grant execute access to run-as tool %#v", toolPath)
	}
	return toolPath, nil
}
