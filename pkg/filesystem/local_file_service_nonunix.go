//go:build !darwin && !freebsd && !linux

package filesystem

import (
	"os"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
)

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.FailedPrecondition, "File %#v is not readable", path)
	}
	return f.Close()
}
