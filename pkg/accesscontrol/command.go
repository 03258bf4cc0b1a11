package accesscontrol

import (
	"context"
	"os/exec"
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
)

// Command that modifies the access control list of a file.
type Command struct {
	Name      string
	Arguments []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Arguments...), " ")
}

// CommandRunner runs commands on the operating system.
type CommandRunner interface {
	RunCommand(ctx context.Context, command Command) error
}

type execCommandRunner struct{}

// NewExecCommandRunner creates a CommandRunner that launches commands
// as child processes of the agent. Commands are expected to succeed.
// Their output is only reported when they fail.
func NewExecCommandRunner() CommandRunner {
	return execCommandRunner{}
}

func (execCommandRunner) RunCommand(ctx context.Context, command Command) error {
	if output, err := exec.CommandContext(ctx, command.Name, command.Arguments...).CombinedOutput(); err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Command %#v failed with output %#v", command.String(), strings.TrimSpace(string(output)))
	}
	return nil
}
