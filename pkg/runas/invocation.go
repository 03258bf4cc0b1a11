package runas

// ArgumentKind indicates how an Argument is rendered when a command
// line is flattened into a single string.
type ArgumentKind int

const (
	// ParameterArgument is a value that may contain arbitrary
	// characters. It is quoted when rendered, if needed.
	ParameterArgument ArgumentKind = iota
	// FlagArgument is a trusted token (e.g., "-v" or "/nologo") that
	// is rendered verbatim.
	FlagArgument
)

// Argument of a command line.
type Argument struct {
	Value string
	Kind  ArgumentKind
}

// NewParameterArguments is a helper for converting a list of strings
// to arguments of kind ParameterArgument.
func NewParameterArguments(values ...string) []Argument {
	arguments := make([]Argument, 0, len(values))
	for _, value := range values {
		arguments = append(arguments, Argument{Value: value, Kind: ParameterArgument})
	}
	return arguments
}

// Invocation of a tool, together with the resources that need to be
// materialized before it can be launched.
//
// Invocations are treated as values. Transformations must return a new
// Invocation instead of modifying the slices of an existing one.
type Invocation struct {
	ToolPath  string
	Arguments []Argument
	Resources []Resource
}

// AccessControlResource returns the access control resource attached
// to the invocation, if any.
func (i Invocation) AccessControlResource() (*AccessControlResource, bool) {
	for _, resource := range i.Resources {
		if r, ok := resource.(*AccessControlResource); ok {
			return r, true
		}
	}
	return nil, false
}

// FileResources returns all files that need to be staged prior to
// running the invocation.
func (i Invocation) FileResources() []*FileResource {
	var files []*FileResource
	for _, resource := range i.Resources {
		if f, ok := resource.(*FileResource); ok {
			files = append(files, f)
		}
	}
	return files
}

// withoutAccessControlResource returns a copy of the resources of the
// invocation, excluding the access control resource. It is used to
// guarantee that there is at most one such resource per invocation.
func (i Invocation) withoutAccessControlResource() []Resource {
	resources := make([]Resource, 0, len(i.Resources)+3)
	for _, resource := range i.Resources {
		if _, ok := resource.(*AccessControlResource); !ok {
			resources = append(resources, resource)
		}
	}
	return resources
}

// Resource that is needed by an Invocation. It is either a file that
// needs to be written (FileResource) or the access control list that
// needs to be applied (AccessControlResource).
type Resource interface {
	isResource()
}

// Publication indicates at which point in time a FileResource needs
// to be written to disk.
type Publication int

const (
	// PublishBeforeBuild causes a file to be written before the
	// build step is launched.
	PublishBeforeBuild Publication = iota
)

// FileResource is a file that is staged on disk by a publisher before
// the invocation is launched.
type FileResource struct {
	Path        string
	Content     string
	Publication Publication
}

func (*FileResource) isResource() {}
