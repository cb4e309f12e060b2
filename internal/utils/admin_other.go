//go:build !windows

package utils

import "os/user"

// IsAdmin reports whether the process runs as root.
func IsAdmin() bool {
	u, err := user.Current()
	if err != nil {
		return false
	}
	return u.Uid == "0"
}
