package runas

// FileService provides access to the directories of the build step
// and allocates names for files that need to be staged.
type FileService interface {
	// TempFileName returns the absolute path of a file that does
	// not exist yet, ending with the provided extension. Names
	// returned are unique, even across concurrent build steps on
	// the same system.
	TempFileName(extension string) (string, error)
	CheckoutDirectory() string
	TempDirectory() string
	// ValidatePath checks that a file exists and can be executed.
	ValidatePath(path string) error
}

// ToolLocator returns the directory in which a tool shipped with the
// agent is installed.
type ToolLocator interface {
	GetToolPath(toolName string) (string, error)
}
