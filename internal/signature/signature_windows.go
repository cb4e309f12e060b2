package signature

import (
	"os"
	"os/exec"
	"strings"
	"syscall"
	"unsafe"

	"procwarden/internal/core"
)

var (
	wintrust           = syscall.NewLazyDLL("wintrust.dll")
	procWinVerifyTrust = wintrust.NewProc("WinVerifyTrust")
)

// WINTRUST_DATA structure (simplified)
type winTrustData struct {
	CbStruct           uint32
	PolicyCallbackData uintptr
	SIPClientData      uintptr
	UIChoice           uint32
	RevocationChecks   uint32
	UnionChoice        uint32
	FileInfoPtr        uintptr
	StateAction        uint32
	StateData          uintptr
	URLReference       uintptr
	ProvFlags          uint32
	UIContext          uint32
	SignatureSettings  uintptr
}

type winTrustFileInfo struct {
	CbStruct     uint32
	FilePath     *uint16
	FileHandle   syscall.Handle
	KnownSubject uintptr
}

const (
	trustENoSignature = 0x800B0100

	wtdUINone            = 2
	wtdRevokeNone        = 0
	wtdChoiceFile        = 1
	wtdStateActionVerify = 1
	wtdStateActionClose  = 2
)

// verifyFile resolves trust for a single executable via WinVerifyTrust,
// then maps the signer to the publisher table.
func verifyFile(exePath string) core.SignatureStatus {
	if _, err := os.Stat(exePath); err != nil {
		return core.SigUnknown
	}

	pathPtr, err := syscall.UTF16PtrFromString(exePath)
	if err != nil {
		return core.SigUnknown
	}

	fileInfo := winTrustFileInfo{
		CbStruct: uint32(unsafe.Sizeof(winTrustFileInfo{})),
		FilePath: pathPtr,
	}

	// WINTRUST_ACTION_GENERIC_VERIFY_V2
	actionGUID := syscall.GUID{
		Data1: 0xaac56b,
		Data2: 0xcd44,
		Data3: 0x11d0,
		Data4: [8]byte{0x8c, 0xc2, 0x00, 0xc0, 0x4f, 0xc2, 0x95, 0xee},
	}

	data := winTrustData{
		CbStruct:         uint32(unsafe.Sizeof(winTrustData{})),
		UIChoice:         wtdUINone,
		RevocationChecks: wtdRevokeNone,
		UnionChoice:      wtdChoiceFile,
		FileInfoPtr:      uintptr(unsafe.Pointer(&fileInfo)),
		StateAction:      wtdStateActionVerify,
	}

	ret, _, _ := procWinVerifyTrust.Call(
		uintptr(syscall.InvalidHandle),
		uintptr(unsafe.Pointer(&actionGUID)),
		uintptr(unsafe.Pointer(&data)),
	)
	status := uint32(ret)

	data.StateAction = wtdStateActionClose
	procWinVerifyTrust.Call(
		uintptr(syscall.InvalidHandle),
		uintptr(unsafe.Pointer(&actionGUID)),
		uintptr(unsafe.Pointer(&data)),
	)

	switch status {
	case 0:
		// valid signature; publisher decides the tier of trust
	case trustENoSignature:
		return core.SigUnsigned
	default:
		// signed but broken or distrusted; treat like an unknown publisher
		return core.SigSignedUnknownPublisher
	}

	if publisherTrusted(signerName(exePath)) {
		return core.SigSignedTrusted
	}
	return core.SigSignedUnknownPublisher
}

// signerName extracts the signer CN from a signed file.
func signerName(exePath string) string {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command",
		"(Get-AuthenticodeSignature '"+strings.ReplaceAll(exePath, "'", "''")+"').SignerCertificate.Subject")
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	subject := strings.TrimSpace(string(out))
	for _, part := range strings.Split(subject, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "CN=") {
			return strings.TrimPrefix(part, "CN=")
		}
	}
	return subject
}
