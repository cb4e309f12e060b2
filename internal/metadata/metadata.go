// Package metadata reads the version-info resource of executables to
// recover the vendor's own FileDescription and CompanyName strings.
package metadata

import "sync"

type versionInfo struct {
	Description string
	Company     string
}

// Reader caches version-info lookups per executable path.
type Reader struct {
	mu    sync.Mutex
	cache map[string]versionInfo
}

func NewReader() *Reader {
	return &Reader{cache: make(map[string]versionInfo)}
}

// FileDescription implements core.MetadataReader.
func (r *Reader) FileDescription(exePath string) string {
	return r.lookup(exePath).Description
}

// Company implements core.MetadataReader.
func (r *Reader) Company(exePath string) string {
	return r.lookup(exePath).Company
}

func (r *Reader) lookup(exePath string) versionInfo {
	if exePath == "" {
		return versionInfo{}
	}

	r.mu.Lock()
	if vi, ok := r.cache[exePath]; ok {
		r.mu.Unlock()
		return vi
	}
	r.mu.Unlock()

	vi := readVersionInfo(exePath)

	r.mu.Lock()
	r.cache[exePath] = vi
	r.mu.Unlock()
	return vi
}
