// Package mock contains mocks of the interfaces declared by this
// repository, for use in unit tests.
package mock

//go:generate mockgen -destination runas.go -package mock github.com/MartinWitt/teamcity-runas-plugin/pkg/runas AccessControlApplier,BaselineAccessControlProvider,CommandLineArgumentsService,CommandLineSetupBuilder,CredentialsProvider,FileService,RunAsLogger,ToolLocator
//go:generate mockgen -destination parameters.go -package mock github.com/MartinWitt/teamcity-runas-plugin/pkg/runas/parameters BuildFeatureParametersService,BuildRunnerContext,ParametersService,RunnerParametersService
//go:generate mockgen -destination accesscontrol.go -package mock github.com/MartinWitt/teamcity-runas-plugin/pkg/accesscontrol CommandRunner,CommandTranslator
//go:generate mockgen -destination aliases.go -package mock github.com/MartinWitt/teamcity-runas-plugin/internal/mock/aliases Cleaner
