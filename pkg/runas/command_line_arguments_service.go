package runas

// CommandLineArgumentsService converts between lists of arguments and
// the textual representation of a command line on the current
// platform.
type CommandLineArgumentsService interface {
	CreateCommandLineString(arguments []Argument) string
	ParseCommandLineArguments(commandLine string) ([]Argument, error)
}
