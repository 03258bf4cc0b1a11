package accesscontrol

import (
	"context"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/util"
)

// CommandTranslator converts an access control entry to the commands
// that need to be run to apply it.
type CommandTranslator interface {
	TranslateAccessControlEntry(entry runas.AccessControlEntry) ([]Command, error)
}

type commandRunningAccessControlApplier struct {
	translator CommandTranslator
	runner     CommandRunner
}

// NewCommandRunningAccessControlApplier creates an AccessControlApplier
// that applies access control lists by running commands such as
// icacls, chmod and setfacl. Conflicting entries are resolved before
// translation, meaning that only the effective permissions are
// applied. Entries are applied in order. Application stops at the
// first failure.
func NewCommandRunningAccessControlApplier(translator CommandTranslator, runner CommandRunner) runas.AccessControlApplier {
	return &commandRunningAccessControlApplier{
		translator: translator,
		runner:     runner,
	}
}

func (a *commandRunningAccessControlApplier) ApplyAccessControlList(ctx context.Context, acl runas.AccessControlList) error {
	for _, entry := range acl.Effective() {
		commands, err := a.translator.TranslateAccessControlEntry(entry)
		if err != nil {
			return util.StatusWrapf(err, "Failed to translate access control entry for %#v", entry.Target)
		}
		for _, command := range commands {
			if err := a.runner.RunCommand(ctx, command); err != nil {
				return util.StatusWrapf(err, "Failed to apply access control entry for %#v", entry.Target)
			}
		}
	}
	return nil
}
