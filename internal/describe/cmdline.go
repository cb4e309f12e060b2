package describe

import (
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// browserNames maps chromium-family executables to product names for
// role-specific descriptions.
var browserNames = map[string]string{
	"chrome.exe": "Google Chrome",
	"msedge.exe": "Microsoft Edge",
	"brave.exe":  "Brave",
	"opera.exe":  "Opera",
}

// roleFromCmdline recognizes multi-purpose host binaries whose actual role
// is carried in a command-line flag, and returns a role-specific
// description. Empty string when nothing matches.
func roleFromCmdline(name, cmdline string) string {
	if cmdline == "" {
		return ""
	}
	lower := strings.ToLower(cmdline)

	if browser, ok := browserNames[name]; ok {
		return chromiumRole(browser, lower)
	}

	switch name {
	case "code.exe":
		switch {
		case strings.Contains(lower, "--type=renderer"):
			return "VS Code — editor window renderer"
		case strings.Contains(lower, "--type=gpu-process"):
			return "VS Code — GPU acceleration process"
		case strings.Contains(lower, "extensionhost"):
			return "VS Code — extension host (runs installed extensions)"
		case strings.Contains(lower, "--type="):
			return "VS Code — helper process"
		}
	case "msedgewebview2.exe":
		switch {
		case strings.Contains(lower, "--type=renderer"):
			return "Edge WebView2 — rendering web content for an app"
		case strings.Contains(lower, "--type=gpu-process"):
			return "Edge WebView2 — GPU acceleration for embedded web content"
		}
		if app := flagValue(cmdline, "--webview-exe-name="); app != "" {
			return "Edge WebView2 — embedded browser for " + app
		}
	case "python.exe", "pythonw.exe":
		return pythonRole(cmdline)
	case "node.exe":
		return nodeRole(cmdline, lower)
	case "java.exe", "javaw.exe":
		return javaRole(cmdline, lower)
	case "cmd.exe":
		if i := strings.Index(lower, "/c "); i >= 0 {
			return "Command Prompt — running: " + truncate(cmdline[i+3:], 80)
		}
		if i := strings.Index(lower, "/k "); i >= 0 {
			return "Command Prompt — running: " + truncate(cmdline[i+3:], 80)
		}
	case "powershell.exe", "pwsh.exe":
		ps := "Windows PowerShell"
		if name == "pwsh.exe" {
			ps = "PowerShell 7"
		}
		switch {
		case strings.Contains(lower, "-encodedcommand"):
			return ps + " — running an encoded command"
		case strings.Contains(lower, "-file "):
			if script := argAfter(cmdline, "-file"); script != "" {
				return ps + " — running script: " + filepath.Base(script)
			}
		case strings.Contains(lower, "-command "), strings.Contains(lower, "-c "):
			return ps + " — running a command"
		}
	case "svchost.exe":
		if svc := argAfter(cmdline, "-s"); svc != "" {
			return "Service Host: " + svc
		}
	case "rundll32.exe":
		if fields := strings.Fields(cmdline); len(fields) > 1 {
			arg := fields[1]
			if i := strings.Index(strings.ToLower(arg), ".dll"); i >= 0 {
				return "Running DLL function: " + truncate(arg, 80)
			}
		}
	case "msiexec.exe":
		switch {
		case strings.Contains(lower, "/i "):
			return "Windows Installer — installing software"
		case strings.Contains(lower, "/x "):
			return "Windows Installer — uninstalling software"
		case strings.Contains(lower, "/p "):
			return "Windows Installer — applying a patch"
		}
	}
	return ""
}

func chromiumRole(browser, lower string) string {
	switch {
	case strings.Contains(lower, "--type=renderer"):
		return browser + " — tab renderer (displays a web page)"
	case strings.Contains(lower, "--type=gpu-process"):
		return browser + " — GPU process (hardware-accelerated graphics)"
	case strings.Contains(lower, "--type=utility"):
		switch {
		case strings.Contains(lower, "network"):
			return browser + " — network service (handles all web requests)"
		case strings.Contains(lower, "audio"):
			return browser + " — audio service"
		case strings.Contains(lower, "storage"):
			return browser + " — storage service (cookies, cache)"
		}
		return browser + " — utility process (background helper)"
	case strings.Contains(lower, "--type=crashpad-handler"):
		return browser + " — crash reporter"
	case strings.Contains(lower, "--type=broker"):
		return browser + " — security broker"
	case !strings.Contains(lower, "--type="):
		return browser + " — main browser process (manages all tabs and extensions)"
	}
	return ""
}

func pythonRole(cmdline string) string {
	args := splitArgs(cmdline)
	for i := 1; i < len(args); i++ {
		a := args[i]
		switch {
		case strings.HasSuffix(a, ".py"), strings.HasSuffix(a, ".pyw"):
			return "Python — running script: " + filepath.Base(a)
		case a == "-m" && i+1 < len(args):
			return "Python — running module: " + args[i+1]
		case a == "-c":
			return "Python — running inline code"
		}
	}
	return "Python — interpreter running"
}

func nodeRole(cmdline, lower string) string {
	args := splitArgs(cmdline)
	for i := 1; i < len(args); i++ {
		a := args[i]
		if strings.HasSuffix(a, ".js") || strings.HasSuffix(a, ".mjs") || strings.HasSuffix(a, ".ts") {
			return "Node.js — running: " + filepath.Base(a)
		}
	}
	if strings.Contains(lower, "npm") {
		return "Node.js — running npm"
	}
	if strings.Contains(lower, "npx") {
		return "Node.js — running npx"
	}
	return "Node.js — JavaScript runtime"
}

func javaRole(cmdline, lower string) string {
	if strings.Contains(lower, "minecraft") {
		return "Java — running Minecraft"
	}
	if jar := argAfter(cmdline, "-jar"); jar != "" {
		return "Java — running: " + filepath.Base(jar)
	}
	return ""
}

// suspiciousCmdline flags argument patterns that contradict a benign
// fact-base entry: encoded commands, LOLBin abuse, execution out of
// writable drop directories.
func suspiciousCmdline(cmdline string) bool {
	if cmdline == "" {
		return false
	}
	lower := strings.ToLower(cmdline)
	patterns := []string{
		"-encodedcommand",
		"regsvr32 /s /n",
		"mshta http",
		"\\temp\\",
		"\\appdata\\local\\temp\\",
		"\\public\\",
		"downloadstring(",
		"bypass -nop",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// splitArgs tokenizes a command line; falls back to whitespace fields when
// quoting is malformed.
func splitArgs(cmdline string) []string {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return strings.Fields(cmdline)
	}
	return args
}

// argAfter returns the token following a flag, case-insensitively.
func argAfter(cmdline, flag string) string {
	args := splitArgs(cmdline)
	for i, a := range args {
		if strings.EqualFold(a, flag) && i+1 < len(args) {
			return strings.Trim(args[i+1], `"'`)
		}
	}
	return ""
}

// flagValue extracts the value of a --flag=value style argument.
func flagValue(cmdline, prefix string) string {
	for _, a := range strings.Fields(cmdline) {
		if strings.HasPrefix(a, prefix) {
			return strings.TrimPrefix(a, prefix)
		}
	}
	return ""
}

// truncate cuts on rune boundaries; command lines and description text can
// carry multibyte characters.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
