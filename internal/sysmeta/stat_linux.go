//go:build linux

package sysmeta

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// Ownership returns the owner and group names of path. Unresolvable ids fall
// back to their numeric form.
func Ownership(path string) (owner, group string, err error) {
	stat, err := statT(path)
	if err != nil {
		return "", "", err
	}

	owner = strconv.FormatUint(uint64(stat.Uid), 10)
	if u, err := user.LookupId(owner); err == nil {
		owner = u.Username
	}

	group = strconv.FormatUint(uint64(stat.Gid), 10)
	if g, err := user.LookupGroupId(group); err == nil {
		group = g.Name
	}

	return owner, group, nil
}

// Timestamps returns the last access, modify and status-change times of
// path, each formatted in local time.
func Timestamps(path string) (access, modify, change string, err error) {
	stat, err := statT(path)
	if err != nil {
		return "", "", "", err
	}

	access = formatTimespec(stat.Atim)
	modify = formatTimespec(stat.Mtim)
	change = formatTimespec(stat.Ctim)

	return access, modify, change, nil
}

// statT stats path and asserts the platform-specific metadata.
func statT(path string) (*syscall.Stat_t, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("file stats assertion failed for %q", path)
	}

	return stat, nil
}

func formatTimespec(ts syscall.Timespec) string {
	return time.Unix(ts.Sec, ts.Nsec).Format(timeLayout)
}
