//go:build windows

package main

import (
	"os/user"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/commandline"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"
)

const defaultCommandFileExtension = ".cmd"

func newPlatform() (*platform, error) {
	currentUser, err := user.Current()
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to obtain current user")
	}
	return &platform{
		argumentsService:        commandline.NewWindowsArgumentsService(),
		launcherScriptGenerator: runas.NewCmdLauncherScriptGenerator(),
		commandTranslator:       accesscontrol.NewICACLSTranslator(currentUser.Username),
	}, nil
}
