package runas

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LauncherScriptParameters contains the values that are embedded into
// a launcher script.
type LauncherScriptParameters struct {
	CommandLine string
}

// LauncherScriptGenerator renders the script that is launched by the
// run-as tool on behalf of the target user. The script announces the
// command it is about to run, runs it and propagates its exit code.
type LauncherScriptGenerator interface {
	GenerateLauncherScript(parameters LauncherScriptParameters) (string, error)
}

// cmdReplacements is the ordered list of substitutions that is applied
// to text echoed by a cmd.exe batch file. The caret needs to be
// escaped first, as the other substitutions introduce carets of their
// own.
var cmdReplacements = [...]struct {
	target      string
	replacement string
}{
	{"^", "^^"},
	{"\\", "^\\"},
	{"&", "^&"},
	{"|", "^|"},
	{"'", "^'"},
	{">", "^>"},
	{"<", "^<"},
}

// EscapeCmdText escapes characters that cmd.exe would otherwise
// interpret when the text is passed to ECHO.
func EscapeCmdText(text string) string {
	for _, r := range cmdReplacements {
		text = strings.ReplaceAll(text, r.target, r.replacement)
	}
	return text
}

var serviceMessageReplacer = strings.NewReplacer(
	"|", "||",
	"'", "|'",
	"\n", "|n",
	"\r", "|r",
	"[", "|[",
	"]", "|]",
)

// FormatStatusMessage returns the build log service message that is
// printed by launcher scripts prior to running the command.
func FormatStatusMessage(commandLine string) string {
	return "##teamcity[message text='" + serviceMessageReplacer.Replace("Starting: "+commandLine) + "' status='NORMAL']"
}

func checkLauncherScriptParameters(parameters LauncherScriptParameters) error {
	if parameters.CommandLine == "" {
		return status.Error(codes.InvalidArgument, "Cannot generate a launcher script for an empty command line")
	}
	return nil
}

type cmdLauncherScriptGenerator struct{}

// NewCmdLauncherScriptGenerator creates a LauncherScriptGenerator that
// emits batch files for cmd.exe.
func NewCmdLauncherScriptGenerator() LauncherScriptGenerator {
	return cmdLauncherScriptGenerator{}
}

func (cmdLauncherScriptGenerator) GenerateLauncherScript(parameters LauncherScriptParameters) (string, error) {
	if err := checkLauncherScriptParameters(parameters); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"@ECHO OFF",
		"ECHO " + EscapeCmdText(FormatStatusMessage(parameters.CommandLine)),
		parameters.CommandLine,
		"SET \"EXIT_CODE=%ERRORLEVEL%\"",
		"EXIT /B %EXIT_CODE%",
	}, "\r\n"), nil
}

type shellLauncherScriptGenerator struct{}

// NewShellLauncherScriptGenerator creates a LauncherScriptGenerator
// that emits POSIX shell scripts.
func NewShellLauncherScriptGenerator() LauncherScriptGenerator {
	return shellLauncherScriptGenerator{}
}

func (shellLauncherScriptGenerator) GenerateLauncherScript(parameters LauncherScriptParameters) (string, error) {
	if err := checkLauncherScriptParameters(parameters); err != nil {
		return "", err
	}
	return strings.Join([]string{
		"#!/bin/sh",
		"set +x",
		"echo " + shellquote.Join(FormatStatusMessage(parameters.CommandLine)),
		parameters.CommandLine,
		"EXIT_CODE=$?",
		"exit $EXIT_CODE",
	}, "\n") + "\n", nil
}
