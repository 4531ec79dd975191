// Package sysmeta reads ownership, permission and timestamp metadata from
// the operating system and hands it back as pre-formatted strings. The
// inspection engine stores these facts verbatim and never interprets raw
// uid/gid or time values itself.
package sysmeta

import "io/fs"

// timeLayout is the format used for all three reported timestamps.
const timeLayout = "2006-01-02 15:04:05"

// Permissions renders the owner/group/other permission triads of mode as a
// 9-character rwx string.
func Permissions(mode fs.FileMode) string {
	const symbols = "rwxrwxrwx"

	perm := mode.Perm()
	out := []byte("---------")

	for i := 0; i < len(out); i++ {
		if perm&(1<<uint(8-i)) != 0 {
			out[i] = symbols[i]
		}
	}

	return string(out)
}
