//go:build !windows

package main

import (
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/commandline"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
)

const defaultCommandFileExtension = ".sh"

func newPlatform() (*platform, error) {
	return &platform{
		argumentsService:        commandline.NewPOSIXArgumentsService(),
		launcherScriptGenerator: runas.NewShellLauncherScriptGenerator(),
		commandTranslator:       accesscontrol.NewPOSIXTranslator(accesscontrol.IsLocalDirectory),
	}, nil
}
