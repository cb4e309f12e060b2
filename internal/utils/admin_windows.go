package utils

import "golang.org/x/sys/windows"

// IsAdmin reports whether the process token is elevated. Suppression
// backends that touch HKLM or the service control manager need this.
func IsAdmin() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
