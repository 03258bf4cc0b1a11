package runas

import (
	"github.com/rs/zerolog"
)

// RunAsLogger receives every invocation that has been rewritten to run
// as a specific user. The final argument of these invocations is the
// user's password. Implementations must not persist it.
type RunAsLogger interface {
	LogRunAs(invocation Invocation)
}

type zerologRunAsLogger struct {
	logger zerolog.Logger
}

// NewZerologRunAsLogger creates a RunAsLogger that writes an audit
// record for every invocation to a zerolog logger. The password
// argument is redacted.
func NewZerologRunAsLogger(logger zerolog.Logger) RunAsLogger {
	return &zerologRunAsLogger{
		logger: logger,
	}
}

func (l *zerologRunAsLogger) LogRunAs(invocation Invocation) {
	arguments := make([]string, 0, len(invocation.Arguments))
	for i, argument := range invocation.Arguments {
		if i == len(invocation.Arguments)-1 {
			arguments = append(arguments, Password{}.String())
		} else {
			arguments = append(arguments, argument.Value)
		}
	}
	l.logger.Info().
		Str("tool_path", invocation.ToolPath).
		Strs("arguments", arguments).
		Int("staged_files", len(invocation.FileResources())).
		Msg("Running build step as another user")
}
