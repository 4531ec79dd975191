//go:build !linux

package sysmeta

import "errors"

var errUnsupported = errors.New("ownership and timestamp metadata not supported on this platform")

// Ownership is unavailable on this platform; callers degrade the failure to
// a report warning.
func Ownership(string) (owner, group string, err error) {
	return "", "", errUnsupported
}

// Timestamps is unavailable on this platform; callers degrade the failure to
// a report warning.
func Timestamps(string) (access, modify, change string, err error) {
	return "", "", "", errUnsupported
}
