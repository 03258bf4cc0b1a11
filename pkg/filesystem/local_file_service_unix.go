//go:build darwin || freebsd || linux

package filesystem

import (
	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
)

func checkReadable(path string) error {
	if err := unix.Access(path, unix.R_OK); err != nil {
		return util.StatusWrapfWithCode(err, codes.FailedPrecondition, "File %#v is not readable", path)
	}
	return nil
}
