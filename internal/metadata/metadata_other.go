//go:build !windows

package metadata

func readVersionInfo(exePath string) versionInfo {
	return versionInfo{}
}
