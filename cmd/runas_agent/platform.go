package main

import (
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
)

// platform contains the implementations of interfaces whose behavior
// depends on the operating system.
type platform struct {
	argumentsService        runas.CommandLineArgumentsService
	launcherScriptGenerator runas.LauncherScriptGenerator
	commandTranslator       accesscontrol.CommandTranslator
}
