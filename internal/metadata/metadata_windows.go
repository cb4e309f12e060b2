package metadata

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// readVersionInfo pulls FileDescription and CompanyName from the PE
// version resource, trying the file's own language table before the
// common neutral and en-US fallbacks.
func readVersionInfo(exePath string) versionInfo {
	size, err := windows.GetFileVersionInfoSize(exePath, nil)
	if err != nil || size == 0 {
		return versionInfo{}
	}

	block := make([]byte, size)
	if err := windows.GetFileVersionInfo(exePath, 0, size, unsafe.Pointer(&block[0])); err != nil {
		return versionInfo{}
	}

	langs := translationTables(block)
	langs = append(langs, "040904b0", "000004b0", "040904e4")

	var vi versionInfo
	for _, lang := range langs {
		if vi.Description == "" {
			vi.Description = queryString(block, lang, "FileDescription")
		}
		if vi.Company == "" {
			vi.Company = queryString(block, lang, "CompanyName")
		}
		if vi.Description != "" && vi.Company != "" {
			break
		}
	}
	return vi
}

// translationTables lists the language\codepage pairs declared by the file.
func translationTables(block []byte) []string {
	var buf unsafe.Pointer
	var length uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&block[0]), `\VarFileInfo\Translation`, unsafe.Pointer(&buf), &length); err != nil {
		return nil
	}

	type langCodepage struct {
		Lang     uint16
		Codepage uint16
	}
	count := int(length) / int(unsafe.Sizeof(langCodepage{}))
	pairs := unsafe.Slice((*langCodepage)(buf), count)

	out := make([]string, 0, count)
	for _, p := range pairs {
		out = append(out, fmt.Sprintf("%04x%04x", p.Lang, p.Codepage))
	}
	return out
}

func queryString(block []byte, lang, name string) string {
	var buf unsafe.Pointer
	var length uint32
	sub := `\StringFileInfo\` + lang + `\` + name
	if err := windows.VerQueryValue(unsafe.Pointer(&block[0]), sub, unsafe.Pointer(&buf), &length); err != nil || length == 0 {
		return ""
	}
	return strings.TrimRight(windows.UTF16ToString(unsafe.Slice((*uint16)(buf), length)), "\x00")
}
