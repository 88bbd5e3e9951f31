package metadata

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime reads the file creation time via statx. Not every
// filesystem records a birth time; absence is an error so the chain
// falls through to the modification time.
func birthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 || (stx.Btime.Sec == 0 && stx.Btime.Nsec == 0) {
		return time.Time{}, errors.New("birth time not recorded by filesystem")
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
